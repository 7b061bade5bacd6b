package fiber

type SeriesItemResponse struct {
	Name   string    `json:"name" example:"Network Issues"`
	Values []float64 `json:"values"`
}

type SeriesResponse struct {
	Dataset     string               `json:"dataset" example:"thematic"`
	Granularity string               `json:"granularity" example:"monthly"`
	GroupBy     string               `json:"group_by,omitempty" example:"ThemeName"`
	Normalized  bool                 `json:"normalized"`
	TickFormat  string               `json:"tick_format,omitempty" example:"%b-%y"`
	Periods     []string             `json:"periods"`
	Categories  []string             `json:"categories"`
	Series      []SeriesItemResponse `json:"series"`
}

type ChangeRowResponse struct {
	Category string  `json:"category" example:"Network Issues"`
	StartPct float64 `json:"start_pct" example:"80"`
	EndPct   float64 `json:"end_pct" example:"20"`
	ChangePP float64 `json:"change_pp" example:"-60"`
}

type ChangeResponse struct {
	Dataset     string              `json:"dataset"`
	Granularity string              `json:"granularity"`
	GroupBy     string              `json:"group_by"`
	FirstPeriod string              `json:"first_period" example:"2024-01-01"`
	LastPeriod  string              `json:"last_period" example:"2024-06-01"`
	Rows        []ChangeRowResponse `json:"rows"`
}

type SignalToNoiseResponse struct {
	Dataset      string    `json:"dataset" example:"time_series"`
	NoiseDataset string    `json:"noise_dataset" example:"time_series_unfiltered"`
	Granularity  string    `json:"granularity"`
	TickFormat   string    `json:"tick_format,omitempty"`
	Periods      []string  `json:"periods"`
	Signal       []float64 `json:"signal"`
	Noise        []float64 `json:"noise"`
	Ratio        []float64 `json:"ratio"`
}

type ProfileBucketResponse struct {
	Label  string  `json:"label" example:"Mar"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

type ProfileResponse struct {
	Dataset string                  `json:"dataset"`
	Kind    string                  `json:"kind" example:"fiscal_month"`
	Buckets []ProfileBucketResponse `json:"buckets"`
}

type CategoryTotalResponse struct {
	Category string  `json:"category" example:"Slow Internet"`
	Total    float64 `json:"total" example:"42"`
}

type TotalsResponse struct {
	Dataset string                  `json:"dataset"`
	GroupBy string                  `json:"group_by"`
	Totals  []CategoryTotalResponse `json:"totals"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid time range"`
}
