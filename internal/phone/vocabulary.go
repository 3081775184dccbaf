package phone

// CriteriaKeys are the recommendation filter keys. Each maps to a catalog column.
var CriteriaKeys = []string{
	"brand",
	"price",
	"os",
	"display_size_inch",
	"display_type",
	"refresh_rate",
	"processor",
	"ram_gb",
	"storage_gb",
	"battery_mah",
	"charging_speed_w",
	"rear_camera_mp",
	"front_camera_mp",
	"camera_features",
	"network",
	"features",
	"use_cases",
	"released_year",
}

// TextKeys are matched with a case-insensitive substring search.
var TextKeys = map[string]bool{
	"brand":           true,
	"os":              true,
	"display_type":    true,
	"processor":       true,
	"network":         true,
	"camera_features": true,
}

// FloatKeys keep fractional values in numeric comparisons; other keys truncate to integers.
var FloatKeys = map[string]bool{
	"display_size_inch": true,
}

// TagKeys hold lists and are matched by containment.
var TagKeys = map[string]bool{
	"features":  true,
	"use_cases": true,
}

var AllowedFeatures = []string{
	"fast charging", "wireless charging", "reverse wireless charging", "battery saver mode",
	"long battery life", "magnetic charging", "usb type-c", "power delivery", "removable battery",
	"flagship processor", "gaming processor", "liquid cooling", "dedicated gpu",
	"high benchmark score", "expandable storage", "5nm chipset", "efficient performance",
	"dual camera", "triple camera", "quad camera", "periscope zoom", "optical zoom",
	"ultrawide camera", "macro camera", "depth sensor", "optical image stabilization",
	"electronic image stabilization", "night mode", "hdr", "4k video recording",
	"8k video recording", "slow motion video", "portrait mode", "ai scene detection", "pro mode",
	"cinematic mode", "telephoto lens", "high megapixel camera", "amoled display", "oled display",
	"super amoled", "ltpo display", "lcd display", "high refresh rate", "120hz refresh rate",
	"144hz refresh rate", "hdr10+", "dolby vision", "always-on display", "adaptive refresh rate",
	"punch-hole display", "curved display", "bezel-less design", "in-display fingerprint sensor",
	"scratch-resistant glass", "gorilla glass", "stereo speakers", "dolby atmos", "hi-res audio",
	"3.5mm headphone jack", "dual microphone", "noise cancellation", "fm radio", "5g", "4g lte",
	"wifi 6", "wifi 6e", "bluetooth 5.3", "nfc", "infrared blaster", "dual sim", "esim support",
	"satellite connectivity", "gps", "usb otg", "face unlock", "fingerprint sensor",
	"in-display fingerprint", "side-mounted fingerprint", "under-display sensor", "secure enclave",
	"app lock", "metal body", "glass back", "plastic body", "water resistant", "ip68 rating",
	"ip67 rating", "dust resistant", "lightweight design", "slim profile", "premium build",
	"color changing back", "ai features", "voice assistant", "gesture navigation",
	"customizable ui", "long software support", "bloatware free", "regular updates", "android one",
	"custom rom support", "game mode", "app cloning", "dual speakers", "stereo recording",
	"vibration motor", "notification led", "reverse charging", "desktop mode", "foldable display",
	"stylus support", "always-on connectivity",
}

var AllowedUseCases = []string{
	// Performance
	"gaming", "mobile esports", "heavy multitasking", "power users", "performance enthusiasts",
	// Photography & video
	"photography", "videography", "content creation", "vlogging", "selfie lovers",
	"travel photography", "low light photography",
	// Everyday use
	"daily use", "students", "professionals", "business use", "social media", "streaming",
	"video calls", "music lovers", "fitness tracking", "navigation", "reading",
	// Endurance
	"long battery life", "reliable performance", "outdoor use", "minimal maintenance", "backup phone",
	// Style
	"aesthetic design", "premium experience", "customization", "compact phone", "large display",
	"foldable experience",
	// Work
	"productivity", "remote work", "document editing", "note taking", "conference calls",
	// Value segments
	"budget friendly", "mid range", "flagship", "ultra premium", "value for money",
	// Travel
	"international travel", "dual sim usage", "global roaming", "satellite communication",
	// Accessibility
	"senior friendly", "kid friendly", "first smartphone",
}
