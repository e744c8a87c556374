package health

type Input struct{}

type Output struct {
	Body Response
}

// Response - статус и заполненность хранилища
type Response struct {
	Status   string `json:"status" example:"OK" doc:"Статус сервиса"`
	Users    int    `json:"users" doc:"Число учетных записей"`
	Versions int    `json:"versions" doc:"Число опубликованных версий"`
}
