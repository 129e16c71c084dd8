package health

// reported by the health endpoint and the server banner
const Version = "1.0.0"

type Response struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version,omitempty"`
}

type PingResponse struct {
	Message string `json:"message"`
}
