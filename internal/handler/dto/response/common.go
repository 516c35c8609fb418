package response

type MessageResponse struct {
	Message string `json:"message"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
