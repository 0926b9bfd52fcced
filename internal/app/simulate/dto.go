package simulate

// Request configures one automaton run. Seed is taken as given; equal
// requests produce equal boards.
type Request struct {
	Width       int
	Height      int
	Rule        string
	FillDensity float64
	Steps       int
	Seed        int64
}

type Response struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rule   string   `json:"rule"`
	Seed   int64    `json:"seed"`
	Steps  int      `json:"steps"`
	Alive  int      `json:"alive"`
	Rows   []string `json:"rows"`
}
