package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"
	"accounts/internal/errors"
	"accounts/internal/infra/persistence/model"
)

// accountRepository implements the repository.AccountRepository interface on
// a MongoDB collection.
type accountRepository struct {
	collection *mongo.Collection
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(database *mongo.Database) repository.AccountRepository {
	return &accountRepository{
		collection: database.Collection(accountsCollection),
	}
}

// FindByUserName retrieves a single account by exact userName match.
func (repo *accountRepository) FindByUserName(ctx context.Context, userName string) (*entity.Account, error) {
	return repo.findOne(ctx, bson.M{"userName": userName}, "failed to find account by userName")
}

// FindByEmail retrieves a single account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, bson.M{"email": email}, "failed to find account by email")
}

// FindByVerificationToken retrieves the account holding the given verification token.
func (repo *accountRepository) FindByVerificationToken(ctx context.Context, token string) (*entity.Account, error) {
	return repo.findOne(ctx, bson.M{"verificationToken": token}, "failed to find account by verification token")
}

func (repo *accountRepository) findOne(ctx context.Context, filter bson.M, wrapMessage string) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.collection.FindOne(ctx, filter).Decode(&accountM); err != nil {
		// If no document matches, return a domain-specific error.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, wrapMessage)
	}

	return accountM.ToDomain(), nil
}

// Create persists a new account document and writes the driver-assigned
// identifier back onto the entity.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	accountM, err := model.FromDomain(account)
	if err != nil {
		return errors.Wrap(err, "failed to map account for insert")
	}

	result, err := repo.collection.InsertOne(ctx, accountM)
	if err != nil {
		return errors.Wrap(err, "failed to insert account")
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("unexpected inserted id type")
	}
	account.ID = insertedID.Hex()

	return nil
}

// Update replaces the stored document with the mutated account. The full
// replace (rather than a field-wise $set) is what drops verificationToken
// from the document once the entity has cleared it.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	account.UpdatedAt = time.Now()

	accountM, err := model.FromDomain(account)
	if err != nil {
		return errors.Wrap(err, "failed to map account for update")
	}

	result, err := repo.collection.ReplaceOne(ctx, bson.M{"_id": accountM.ID}, accountM)
	if err != nil {
		return errors.Wrap(err, "failed to update account")
	}
	if result.MatchedCount == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}
