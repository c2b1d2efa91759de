package mongodb

import (
	"context"
	"errors"

	"github.com/cardworks/payment-gateway/internal/application"
	"github.com/cardworks/payment-gateway/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const paymentsCollection = "payments"

type PaymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{
		collection: db.Database.Collection(paymentsCollection),
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if _, err := r.collection.InsertOne(ctx, toDocument(payment)); err != nil {
		return domain.NewUnexpectedError(err)
	}
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	var doc paymentDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewPaymentNotFoundError(id)
		}
		return nil, domain.NewUnexpectedError(err)
	}

	payment, err := toDomain(&doc)
	if err != nil {
		return nil, domain.NewUnexpectedError(err)
	}
	return payment, nil
}

// Save replaces the stored document conditional on the version the payment
// was loaded with. A concurrent writer that got there first leaves no
// matching document, and the stale save is rejected instead of silently
// losing the earlier update.
func (r *PaymentRepository) Save(ctx context.Context, payment *domain.Payment) error {
	expected := payment.Version

	doc := toDocument(payment)
	doc.Version = expected + 1

	result, err := r.collection.ReplaceOne(ctx,
		bson.M{"_id": payment.ID, "version": expected},
		doc,
	)
	if err != nil {
		return domain.NewUnexpectedError(err)
	}

	if result.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": payment.ID})
		if err != nil {
			return domain.NewUnexpectedError(err)
		}
		if count == 0 {
			return domain.NewPaymentNotFoundError(payment.ID)
		}
		return domain.NewConcurrentModificationError(payment.ID)
	}

	payment.Version = expected + 1
	return nil
}

var _ application.PaymentRepository = (*PaymentRepository)(nil)
