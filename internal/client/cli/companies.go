package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/kodrf/internal/client/registry"
	"github.com/iudanet/kodrf/internal/validation"
)

func (c *Cli) runCompanies(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}

	switch sub {
	case "list", "ls":
		return c.runCompaniesList()
	case "lookup", "find":
		if len(args) < 1 {
			return fmt.Errorf("usage: kodrf companies lookup <inn>")
		}
		return c.runCompaniesLookup(ctx, args[0])
	case "add":
		if len(args) < 1 {
			return fmt.Errorf("usage: kodrf companies add <inn> [name]")
		}
		name := ""
		if len(args) > 1 {
			name = strings.Join(args[1:], " ")
		}
		return c.runCompaniesAdd(ctx, args[0], name)
	case "remove", "rm", "delete":
		if len(args) < 1 {
			return fmt.Errorf("usage: kodrf companies remove <inn>")
		}
		return c.runCompaniesRemove(ctx, args[0])
	default:
		return fmt.Errorf("unknown companies command: %s", sub)
	}
}

func (c *Cli) runCompaniesList() error {
	if c.cache.Token() == "" {
		return ErrNotAuthenticated
	}
	c.cache.Wait()

	c.render(`{{template "companies" .}}`, c.cache.Companies())
	return nil
}

func (c *Cli) runCompaniesLookup(ctx context.Context, inn string) error {
	if err := validation.ValidateINN(inn); err != nil {
		return err
	}

	result, err := c.registry.LookupByTin(ctx, inn)
	if err != nil {
		return err
	}

	c.printLookup(result)
	return nil
}

func (c *Cli) printLookup(result registry.LookupResult) {
	switch result.Status {
	case registry.LookupFound:
		c.io.Printf("✓ Found: %s\n", result.Name)
		if result.KPP != "" {
			c.io.Printf("  KPP:  %s\n", result.KPP)
		}
		if result.OGRN != "" {
			c.io.Printf("  OGRN: %s\n", result.OGRN)
		}
	case registry.LookupSelfEmployed:
		c.io.Printf("✓ Self-employed: %s\n", result.Name)
	case registry.LookupNotFound:
		c.io.Printf("Company with INN %s was not found in the registries\n", result.INN)
	default:
		c.io.Println("Registry lookup is not configured")
	}
}

func (c *Cli) runCompaniesAdd(ctx context.Context, inn, name string) error {
	if err := validation.ValidateINN(inn); err != nil {
		return err
	}
	if c.cache.Token() == "" {
		return ErrNotAuthenticated
	}

	if name == "" {
		result, err := c.registry.LookupByTin(ctx, inn)
		if err != nil {
			// реестр недоступен, название можно ввести вручную
			c.io.Printf("⚠️  Registry lookup failed: %v\n", err)
		} else {
			c.printLookup(result)
			name = result.Name
		}
	}

	if name == "" {
		input, err := c.io.ReadInput("Company name: ")
		if err != nil {
			return fmt.Errorf("failed to read company name: %w", err)
		}
		name = input
	}
	if name == "" {
		return fmt.Errorf("company name cannot be empty")
	}

	// сверка, начатая при старте, не должна закончиться после изменения списка
	c.cache.Wait()
	if err := c.registry.AddCompany(ctx, name, inn); err != nil {
		return err
	}

	c.io.Printf("✓ Company added: %s (INN %s)\n", name, inn)
	return nil
}

func (c *Cli) runCompaniesRemove(ctx context.Context, inn string) error {
	c.cache.Wait()
	if err := c.registry.RemoveCompany(ctx, inn); err != nil {
		return err
	}
	c.io.Printf("✓ Company removed: INN %s\n", inn)
	return nil
}
