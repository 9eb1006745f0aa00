package config

import (
	"net"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	actionNamePattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)
	routePathPattern  = regexp.MustCompile(`^/[A-Za-z0-9._~/-]*$`)
	buttonKinds       = map[string]struct{}{"link": {}, "button": {}, "input": {}}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("action_name", func(fl validator.FieldLevel) bool {
			return actionNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("route_path", func(fl validator.FieldLevel) bool {
			path := fl.Field().String()
			return routePathPattern.MatchString(path) && !strings.Contains(path, "//")
		})

		_ = v.RegisterValidation("button_kind", func(fl validator.FieldLevel) bool {
			_, ok := buttonKinds[strings.ToLower(strings.TrimSpace(fl.Field().String()))]
			return ok
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			_, err := zerolog.ParseLevel(strings.ToLower(fl.Field().String()))
			return err == nil
		})

		_ = v.RegisterValidation("listen_addr", func(fl validator.FieldLevel) bool {
			return isListenAddr(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// isListenAddr accepts host:port and :port forms with a numeric port.
func isListenAddr(addr string) bool {
	if strings.TrimSpace(addr) != addr || addr == "" {
		return false
	}
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return false
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return false
	}
	return n >= 0 && n <= 65535
}
