package model

type LocateRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	Accuracy  float64 `json:"accuracy" validate:"min=0"`
}

type SubmitResponse struct {
	Report   Report `json:"report"`
	Redirect string `json:"redirect"`
	Notice   Notice `json:"notice"`
}
