package openaicompat

import "time"

const (
	VendorQwen     = "qwen"
	VendorDeepSeek = "deepseek"

	completionsPath = "/chat/completions"
	defaultTimeout  = 30 * time.Second
)

// defaults holds the endpoint a vendor is reached on when Config leaves it empty.
type defaults struct {
	baseURL string
	model   string
	timeout time.Duration
}

var vendorDefaults = map[string]defaults{
	VendorQwen: {
		baseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
		model:   "qwen-plus",
		timeout: 30 * time.Second,
	},
	VendorDeepSeek: {
		baseURL: "https://api.deepseek.com/v1",
		model:   "deepseek-chat",
		timeout: 60 * time.Second,
	},
}

// Vendor aliases accepted in configuration.
var vendorAliases = map[string]string{
	"alibaba":   VendorQwen,
	"dashscope": VendorQwen,
}
