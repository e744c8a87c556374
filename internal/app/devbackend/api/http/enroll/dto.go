package enroll

import "osupdater/internal/domain/analytics"

type enrollInput struct {
	Body struct {
		AppName string `json:"appName" minLength:"1" doc:"Имя приложения"`
		Version string `json:"version" minLength:"1" doc:"Установленная версия"`
	}
}

type enrollOutput struct {
	Body struct {
		Status string `json:"status" example:"Ok"`
	}
}

type analyticsInput struct {
	AppName string `query:"appName" required:"true" doc:"Имя приложения"`
}

type analyticsOutput struct {
	Body analytics.Response
}
