package valorantapi

// MapInfo is one entry of the /v1/maps table.
type MapInfo struct {
	UUID        string `json:"uuid"`
	DisplayName string `json:"displayName"`
	MapURL      string `json:"mapUrl"`
}

// AgentInfo is one entry of the /v1/agents table.
type AgentInfo struct {
	UUID        string `json:"uuid"`
	DisplayName string `json:"displayName"`
}
