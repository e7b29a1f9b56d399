package files

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dmitrijs2005/filevault/internal/common"
	"github.com/dmitrijs2005/filevault/internal/server/models"
)

// MongoRepository stores file entries in the "files" collection. Listing
// relies on the collection's natural order, which in practice follows
// insertion order.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection("files")}
}

type fileDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"userId"`
	Name      string             `bson:"name"`
	Type      string             `bson:"type"`
	IsPublic  bool               `bson:"isPublic"`
	ParentID  string             `bson:"parentId"`
	LocalPath string             `bson:"localPath,omitempty"`
}

func (d *fileDoc) toModel() *models.File {
	return &models.File{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Name:      d.Name,
		Type:      d.Type,
		IsPublic:  d.IsPublic,
		ParentID:  models.ParentID(d.ParentID),
		LocalPath: d.LocalPath,
	}
}

func (r *MongoRepository) Create(ctx context.Context, file *models.File) (*models.File, error) {
	doc := fileDoc{
		UserID:    file.UserID,
		Name:      file.Name,
		Type:      file.Type,
		IsPublic:  file.IsPublic,
		ParentID:  string(file.ParentID),
		LocalPath: file.LocalPath,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("db error: unexpected inserted id type %T", res.InsertedID)
	}

	file.ID = id.Hex()
	return file, nil
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*models.File, error) {
	var doc fileDoc
	err := r.col.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc.toModel(), nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*models.File, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*models.File, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid, "userId": userID})
}

func (r *MongoRepository) List(ctx context.Context, userID string, parent models.ParentID, skip, limit int64) ([]*models.File, error) {
	filter := bson.M{"userId": userID}
	if !parent.IsRoot() {
		filter["parentId"] = string(parent)
	}

	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer cur.Close(ctx)

	result := make([]*models.File, 0)
	for cur.Next(ctx) {
		var doc fileDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *MongoRepository) SetPublic(ctx context.Context, id, userID string, isPublic bool) (*models.File, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var doc fileDoc
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "userId": userID},
		bson.M{"$set": bson.M{"isPublic": isPublic}},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return doc.toModel(), nil
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
