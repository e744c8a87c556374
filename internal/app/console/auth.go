package console

import (
	"context"
	"fmt"

	"osupdater/internal/domain/user"
	"osupdater/internal/session"
)

const genericFailure = "Произошла ошибка. Попробуйте еще раз."

// Login аутентифицирует администратора на бэкенде и начинает новую сессию
func (a *App) Login(ctx context.Context, req user.LoginRequest) error {
	if err := user.ValidateLogin(req); err != nil {
		a.notifier.Notify(failure(describe(err, genericFailure)))
		return err
	}

	resp, err := a.backend.Login(ctx, req)
	if err != nil {
		a.log.Error("ошибка входа", "username", req.Username, "error", err)
		a.notifier.Notify(failure(describe(err, "Не удалось войти. Проверьте логин и пароль.")))
		return err
	}

	if err := a.session.Login(ctx, resp.Token); err != nil {
		a.notifier.Notify(failure(genericFailure))
		return fmt.Errorf("ошибка сохранения сессии: %w", err)
	}

	if err := a.session.ApplyRole(ctx, resp.Role); err != nil {
		a.notifier.Notify(failure(genericFailure))
		return fmt.Errorf("ошибка сохранения роли: %w", err)
	}

	a.log.Info("вход выполнен", "username", req.Username, "role", resp.Role)
	a.notifier.Notify(success("Вход выполнен."))
	return nil
}

// Logout завершает сессию. Бэкенд не уведомляется.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return fmt.Errorf("ошибка выхода: %w", err)
	}
	a.notifier.Notify(success("Вы вышли из системы."))
	return nil
}

// Register - публичная регистрация, сессия не требуется
func (a *App) Register(ctx context.Context, req user.RegisterRequest) error {
	if req.Role == "" {
		req.Role = user.RoleUser
	}

	if err := user.ValidateRegister(req); err != nil {
		a.notifier.Notify(failure(describe(err, genericFailure)))
		return err
	}

	if err := a.backend.Register(ctx, req); err != nil {
		a.log.Error("ошибка регистрации", "username", req.Username, "error", err)
		a.notifier.Notify(failure(describe(err, genericFailure)))
		return err
	}

	a.notifier.Notify(success("Регистрация выполнена. Теперь можно войти."))
	return nil
}

// Status возвращает снимок текущей сессии
func (a *App) Status() session.Info {
	return a.session.Info()
}
