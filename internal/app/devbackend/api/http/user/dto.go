package user

import "osupdater/internal/domain/user"

type loginInput struct {
	Body struct {
		Username string `json:"username" minLength:"1" doc:"Имя пользователя"`
		Password string `json:"password" minLength:"1" doc:"Пароль"`
	}
}

type loginOutput struct {
	Body user.LoginResponse
}

type registerInput struct {
	Authorization string `header:"Authorization" doc:"Bearer токен администратора, нужен для роли admin"`
	Body          struct {
		Username string `json:"username" minLength:"1" doc:"Имя пользователя"`
		Password string `json:"password" minLength:"1" doc:"Пароль"`
		Role     string `json:"role,omitempty" enum:"user,admin" doc:"Роль, по умолчанию user"`
	}
}

type registerOutput struct {
	Body user.Record
}

type listOutput struct {
	Body []user.Record
}

type roleInput struct {
	ID   string `path:"id" doc:"ID пользователя"`
	Body struct {
		Role string `json:"role" enum:"user,admin" doc:"Новая роль"`
	}
}

type roleOutput struct {
	Body user.Record
}

type deleteInput struct {
	ID string `path:"id" doc:"ID пользователя"`
}
