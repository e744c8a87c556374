package version

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrInvalidInput = errors.New("invalid version input")

// ValidateCreate проверяет форму создания версии
func ValidateCreate(req CreateRequest) error {
	if strings.TrimSpace(req.AppName) == "" {
		return fmt.Errorf("%w: appName is required", ErrInvalidInput)
	}
	return validateFields(req.Version, req.DownloadLink)
}

// ValidateUpdate проверяет форму редактирования версии
func ValidateUpdate(req UpdateRequest) error {
	return validateFields(req.Version, req.DownloadLink)
}

func validateFields(ver, link string) error {
	if strings.TrimSpace(ver) == "" {
		return fmt.Errorf("%w: version is required", ErrInvalidInput)
	}

	if link == "" {
		return nil
	}

	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: downloadLink must be an http(s) URL", ErrInvalidInput)
	}
	return nil
}
