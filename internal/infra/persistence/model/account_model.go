// Package model contains the persistence representations of domain entities.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"accounts/internal/domain/entity"
)

// AccountModel is the MongoDB document representation of an account.
// verificationToken and verified are omitted from the document when unset so
// that the two lifecycle states stay unambiguous: unverified documents carry
// only verificationToken, verified documents carry only verified.
type AccountModel struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	UserName          string             `bson:"userName"`
	FirstName         string             `bson:"firstName"`
	LastName          string             `bson:"lastName"`
	Email             string             `bson:"email"`
	PasswordHash      string             `bson:"passwordHash"`
	VerificationToken string             `bson:"verificationToken,omitempty"`
	Verified          *time.Time         `bson:"verified,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt"`
}

// ToDomain maps the persistence model back to a pure domain entity.
func (m *AccountModel) ToDomain() *entity.Account {
	return &entity.Account{
		ID:                m.ID.Hex(),
		UserName:          m.UserName,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		VerificationToken: m.VerificationToken,
		VerifiedAt:        m.Verified,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromDomain maps a domain entity to its persistence model. An empty entity
// ID yields a zero ObjectID, letting the driver assign one on insert.
func FromDomain(account *entity.Account) (*AccountModel, error) {
	var id primitive.ObjectID
	if account.ID != "" {
		parsed, err := primitive.ObjectIDFromHex(account.ID)
		if err != nil {
			return nil, err
		}
		id = parsed
	}

	return &AccountModel{
		ID:                id,
		UserName:          account.UserName,
		FirstName:         account.FirstName,
		LastName:          account.LastName,
		Email:             account.Email,
		PasswordHash:      account.PasswordHash,
		VerificationToken: account.VerificationToken,
		Verified:          account.VerifiedAt,
		CreatedAt:         account.CreatedAt,
		UpdatedAt:         account.UpdatedAt,
	}, nil
}
