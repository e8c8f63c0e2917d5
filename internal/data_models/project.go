package dto

type ProjectReadDto struct {
	ID    uint          `json:"id"`
	Name  string        `json:"name"`
	Tasks []TaskReadDto `json:"tasks"`
}

type ProjectCreateDto struct {
	Name string `json:"name"`
}
