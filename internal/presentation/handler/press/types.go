package press

type pressResponse struct {
	Status string `json:"status"`
	Button string `json:"button"`
}
