package version

import "osupdater/internal/domain/version"

type listOutput struct {
	Body []version.Record
}

type versionBody struct {
	AppName      string `json:"appName,omitempty" doc:"Имя приложения, при редактировании необязательно"`
	Version      string `json:"version" minLength:"1" doc:"Номер версии"`
	Changelog    string `json:"changelog,omitempty" doc:"Список изменений"`
	DownloadLink string `json:"downloadLink,omitempty" doc:"Ссылка для загрузки"`
}

type createInput struct {
	Body versionBody
}

type updateInput struct {
	ID   string `path:"id" doc:"ID версии"`
	Body versionBody
}

type output struct {
	Body version.Record
}
