package phone

// Phone is a catalog record. Zero-valued optional fields are omitted from JSON.
type Phone struct {
	ID              int64    `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Brand           string   `json:"brand" yaml:"brand"`
	Price           int      `json:"price,omitempty" yaml:"price"`
	OS              string   `json:"os,omitempty" yaml:"os"`
	DisplaySizeInch float64  `json:"display_size_inch,omitempty" yaml:"display_size_inch"`
	DisplayType     string   `json:"display_type,omitempty" yaml:"display_type"`
	RefreshRate     int      `json:"refresh_rate,omitempty" yaml:"refresh_rate"`
	Processor       string   `json:"processor,omitempty" yaml:"processor"`
	RAMGB           int      `json:"ram_gb,omitempty" yaml:"ram_gb"`
	StorageGB       int      `json:"storage_gb,omitempty" yaml:"storage_gb"`
	BatteryMAh      int      `json:"battery_mah,omitempty" yaml:"battery_mah"`
	ChargingSpeedW  int      `json:"charging_speed_w,omitempty" yaml:"charging_speed_w"`
	RearCameraMP    int      `json:"rear_camera_mp,omitempty" yaml:"rear_camera_mp"`
	FrontCameraMP   int      `json:"front_camera_mp,omitempty" yaml:"front_camera_mp"`
	CameraFeatures  string   `json:"camera_features,omitempty" yaml:"camera_features"`
	Network         string   `json:"network,omitempty" yaml:"network"`
	WeightG         int      `json:"weight_g,omitempty" yaml:"weight_g"`
	Rating          float64  `json:"rating,omitempty" yaml:"rating"`
	PopularityScore int      `json:"popularity_score" yaml:"popularity_score"`
	Features        []string `json:"features" yaml:"features"`
	UseCases        []string `json:"use_cases" yaml:"use_cases"`
	Pros            []string `json:"pros" yaml:"pros"`
	Cons            []string `json:"cons" yaml:"cons"`
	ReleasedYear    int      `json:"released_year,omitempty" yaml:"released_year"`
}

// Criteria is the filter object produced by the model for recommendations.
// Keys outside CriteriaKeys are ignored.
type Criteria map[string]interface{}

// RecommendInput holds the parameters of a recommendation lookup.
type RecommendInput struct {
	Criteria Criteria
	Limit    int
}

// Comparison is the side-by-side result of comparing two phones.
type Comparison struct {
	Phone1 Phone `json:"phone_1"`
	Phone2 Phone `json:"phone_2"`
}
