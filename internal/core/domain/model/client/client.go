package client

import (
	"errors"
	"strings"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

// cpfLength is the digit count of a Brazilian CPF document number.
const cpfLength = 11

// Domain errors for client operations.
var (
	// ErrNameIsRequired is returned when attempting to create a client without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCPFIsInvalid is returned when the CPF is not an eleven-digit number.
	ErrCPFIsInvalid = errs.NewValueIsInvalidError("cpf must contain exactly eleven digits")
	// ErrClientIsNotConstructed is returned when using an improperly initialized Client.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")
	// ErrClientIsDeleted is returned when an operation targets a soft-deleted client.
	ErrClientIsDeleted = errs.NewConflictError("client is deleted")
)

// Client represents a registered renter.
// It is an aggregate root that manages client identity and registration state.
//
// Business rules:
//   - Client must have a valid UUID, non-empty name, and an eleven-digit CPF
//   - CPF is normalized to bare digits (dots and dashes stripped)
//   - A soft-deleted client keeps its data but cannot place new orders
type Client struct {
	id        kernel.UUID
	name      string
	cpf       string
	birthDate time.Time
	email     string
	phone     string

	registeredAt time.Time
	deletedAt    *time.Time

	guard guard.ConstructorGuard
}

// NewClient creates a new Client with the specified parameters.
// Email and phone are optional contact fields and are stored as given.
func NewClient(
	id kernel.UUID,
	name, cpf string,
	birthDate time.Time,
	email, phone string,
	registeredAt time.Time,
) (*Client, error) {
	client := &Client{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		client.setID(id),
		client.setName(name),
		client.setCPF(cpf),
	); err != nil {
		return nil, err
	}

	client.birthDate = birthDate
	client.email = email
	client.phone = phone
	client.registeredAt = registeredAt
	return client, nil
}

// RestoreClient reconstructs a Client aggregate from persistent storage,
// including its soft-delete marker.
func RestoreClient(
	id kernel.UUID,
	name, cpf string,
	birthDate time.Time,
	email, phone string,
	registeredAt time.Time,
	deletedAt *time.Time,
) (*Client, error) {
	client, err := NewClient(id, name, cpf, birthDate, email, phone, registeredAt)
	if err != nil {
		return nil, err
	}

	client.deletedAt = deletedAt
	return client, nil
}

// Validate checks if the Client was properly constructed using a factory.
func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// IsEqual compares two clients by their unique identifiers.
func (c *Client) IsEqual(other *Client) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the client's full name.
func (c *Client) Name() string {
	return c.name
}

// CPF returns the normalized eleven-digit CPF.
func (c *Client) CPF() string {
	return c.cpf
}

// BirthDate returns the client's date of birth.
func (c *Client) BirthDate() time.Time {
	return c.birthDate
}

// Email returns the client's contact email, possibly empty.
func (c *Client) Email() string {
	return c.email
}

// Phone returns the client's contact phone, possibly empty.
func (c *Client) Phone() string {
	return c.phone
}

// RegisteredAt returns the registration timestamp.
func (c *Client) RegisteredAt() time.Time {
	return c.registeredAt
}

// DeletedAt returns the soft-delete timestamp, nil while the client is active.
func (c *Client) DeletedAt() *time.Time {
	return c.deletedAt
}

// IsDeleted reports whether the client has been soft-deleted.
func (c *Client) IsDeleted() bool {
	return c.deletedAt != nil
}

// Delete soft-deletes the client, stamping the deletion time.
// Deleting an already-deleted client is a conflict.
func (c *Client) Delete(now time.Time) error {
	if c.deletedAt != nil {
		return ErrClientIsDeleted
	}

	c.deletedAt = &now
	return nil
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *Client) setCPF(cpf string) error {
	normalized := strings.NewReplacer(".", "", "-", "", " ", "").Replace(cpf)
	if len(normalized) != cpfLength {
		return ErrCPFIsInvalid
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return ErrCPFIsInvalid
		}
	}

	c.cpf = normalized
	return nil
}
