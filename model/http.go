package model

type ParseRequestBody struct {
	Source string `json:"source"`
}

type ParseResponse struct {
	Id       string `json:"id"`
	Tree     string `json:"tree"`
	Lily     string `json:"lily"`
	Duration string `json:"duration"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
