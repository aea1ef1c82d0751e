package health

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
	Button    string `json:"button"`
	Listeners int    `json:"listeners"`
	Clients   int    `json:"wsClients"`
}
