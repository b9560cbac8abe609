package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/iudanet/kodrf/internal/client/appdata"
	"github.com/iudanet/kodrf/internal/client/auth"
	"github.com/iudanet/kodrf/internal/client/iocli"
	"github.com/iudanet/kodrf/internal/client/order"
	"github.com/iudanet/kodrf/internal/client/registry"
	"github.com/iudanet/kodrf/internal/client/schedule"
)

// PasswordEnv переменная окружения с паролем для неинтерактивного входа
const PasswordEnv = "KODRF_PASSWORD"

// ErrNotAuthenticated команда требует входа
var ErrNotAuthenticated = errors.New("not authenticated. Please run 'kodrf login' first")

// Passwords источники пароля, кроме переменной окружения и интерактивного ввода
type Passwords struct {
	FromFile string
	FromArgs string
}

// Version информация о сборке для команды version
type Version struct {
	Version   string
	BuildDate string
	GitCommit string
}

type Cli struct {
	io        iocli.IO
	cache     *appdata.Cache
	auth      *auth.Service
	schedule  *schedule.Provider
	registry  *registry.Registry
	orders    *order.Workflow
	passwords Passwords
	version   Version
	now       func() time.Time
}

func New(
	io iocli.IO,
	cache *appdata.Cache,
	authService *auth.Service,
	provider *schedule.Provider,
	companies *registry.Registry,
	orders *order.Workflow,
	passwords Passwords,
	version Version,
) *Cli {
	return &Cli{
		io:        io,
		cache:     cache,
		auth:      authService,
		schedule:  provider,
		registry:  companies,
		orders:    orders,
		passwords: passwords,
		version:   version,
		now:       time.Now,
	}
}

// Run выполняет команду. Ошибки возвращаются вызывающему, процесс не завершается.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	var err error
	switch command {
	case "register":
		err = c.runRegister(ctx)
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "profile":
		err = c.runProfile(ctx)
	case "companies", "company":
		err = c.runCompanies(ctx, args)
	case "schedule":
		err = c.runSchedule(ctx, args)
	case "order":
		err = c.runOrder(ctx, args)
	case "version":
		c.PrintVersion()
	case "help":
		c.PrintUsage()
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
	return userError(err)
}

// userError заменяет служебные ошибки понятными сообщениями
func userError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, order.ErrLoginRequired), errors.Is(err, registry.ErrLoginRequired):
		return ErrNotAuthenticated
	default:
		return err
	}
}

// getPassword retrieves password from various sources with priority:
// 1. Environment variable KODRF_PASSWORD
// 2. File specified in passwords.FromFile
// 3. Command-line parameter
// 4. Interactive prompt (fallback)
func (c *Cli) getPassword(prompt string) (string, error) {
	// Priority 1: Environment variable
	if envPassword := os.Getenv(PasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	// Priority 2: File
	if c.passwords.FromFile != "" {
		content, err := os.ReadFile(c.passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	// Priority 3: CLI parameter
	if c.passwords.FromArgs != "" {
		return c.passwords.FromArgs, nil
	}

	// Priority 4: Interactive prompt (fallback)
	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	return password, nil
}

func (c *Cli) PrintUsage() {
	Usage(c.io)
}

func (c *Cli) PrintVersion() {
	c.render(versionTemplate, c.version)
}
