package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.getPassword("Password: ")
	if err != nil {
		return err
	}

	sess, err := c.auth.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Println("✓ Login successful!")
	if sess.Admin != "" {
		c.io.Println("Role: administrator")
	}
	if person := c.cache.Person(); person != nil {
		c.io.Printf("Welcome, %s\n", person.Name)
	}
	return nil
}

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.getPassword("Password: ")
	if err != nil {
		return err
	}

	confirm, err := c.getPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if _, err := c.auth.Register(ctx, name, email, password); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	c.io.Println("✓ Registration successful!")
	c.io.Println("Next step: add your company with 'kodrf companies add <inn>'")
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.cache.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	c.io.Println("✓ Logged out")
	return nil
}
