package schema

// StoreStatus reports connection and size information for the user store.
type StoreStatus struct {
	Backend   string `json:"backend"`
	Connected bool   `json:"connected"`
	Users     int64  `json:"users"`
	Projects  int64  `json:"projects"`
	Links     int64  `json:"links"`
}
