package grid

// Tournament identifies the tournament a series belongs to.
type Tournament struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	NameShortened string `json:"nameShortened"`
}

// SeriesInfo is the central-data view of a series.
type SeriesInfo struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Tournament Tournament `json:"tournament"`
}

// GameRef is one game entry in the live-data series state.
type GameRef struct {
	ID             string `json:"id"`
	SequenceNumber int    `json:"sequenceNumber"`
	Started        bool   `json:"started"`
	Finished       bool   `json:"finished"`
}

// SeriesState lists the games played in a series.
type SeriesState struct {
	ID    string    `json:"id"`
	Games []GameRef `json:"games"`
}
