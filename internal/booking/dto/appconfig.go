package dto

type AppConfigInput struct {
	Stations int `json:"stations"`
	Seats    int `json:"seats"`
}

type AppConfigOutput struct {
	ID       int `json:"id"`
	Stations int `json:"stations"`
	Seats    int `json:"seats"`
}
