// Package dynamodb provides the durable session store. It is selected
// over the in-memory store by configuration.
package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"teachback-backend/domain/core/entities"
	"teachback-backend/domain/core/valueobjects"
	pkgerrors "teachback-backend/pkg/errors"
)

// sessionItem is the DynamoDB representation of a session
type sessionItem struct {
	PK         string                           `dynamodbav:"PK"`
	SK         string                           `dynamodbav:"SK"`
	SessionID  string                           `dynamodbav:"SessionID"`
	UserID     string                           `dynamodbav:"UserID"`
	Theme      string                           `dynamodbav:"Theme"`
	CreatedAt  string                           `dynamodbav:"CreatedAt"`
	Messages   []valueobjects.ChatMessage       `dynamodbav:"Messages"`
	WeakPoints []valueobjects.WeakPoint         `dynamodbav:"WeakPoints"`
	Center     valueobjects.UnderstandingNode   `dynamodbav:"Center"`
	Nodes      []valueobjects.UnderstandingNode `dynamodbav:"Nodes"`
}

// SessionRepository stores sessions in a single DynamoDB table. Items
// are keyed so that a reverse key-ordered query yields newest first.
type SessionRepository struct {
	client *dynamodb.Client
	table  string
	logger *zap.Logger
}

// NewSessionRepository creates a DynamoDB-backed session repository
func NewSessionRepository(client *dynamodb.Client, table string, logger *zap.Logger) *SessionRepository {
	return &SessionRepository{
		client: client,
		table:  table,
		logger: logger,
	}
}

func userPK(userID string) string {
	return "USER#" + userID
}

func sessionSK(createdAt time.Time, sessionID string) string {
	// Timestamp-first sort key so key order is creation order
	return fmt.Sprintf("SESSION#%s#%s", createdAt.UTC().Format(time.RFC3339Nano), sessionID)
}

// AddSession writes the session item
func (r *SessionRepository) AddSession(ctx context.Context, session *entities.Session) error {
	item, err := attributevalue.MarshalMap(toItem(session))
	if err != nil {
		return pkgerrors.NewDatabaseError("failed to marshal session", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
	})
	if err != nil {
		return pkgerrors.NewDatabaseError("failed to store session", err)
	}
	session.MarkEventsAsCommitted()

	r.logger.Debug("session stored",
		zap.String("user_id", session.UserID()),
		zap.String("session_id", session.ID()),
	)
	return nil
}

// ListByUser queries the user's sessions, newest first
func (r *SessionRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Session, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(userPK(userID))).
		And(expression.Key("SK").BeginsWith("SESSION#"))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("failed to build query", err)
	}

	var sessions []*entities.Session
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.table),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ScanIndexForward:          aws.Bool(false),
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			return nil, pkgerrors.NewDatabaseError("failed to query sessions", err)
		}

		for _, raw := range out.Items {
			var item sessionItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				return nil, pkgerrors.NewDatabaseError("failed to unmarshal session", err)
			}
			session, err := fromItem(item)
			if err != nil {
				return nil, err
			}
			sessions = append(sessions, session)
		}

		lastKey = out.LastEvaluatedKey
		if len(lastKey) == 0 {
			break
		}
	}

	return sessions, nil
}

// FindByID returns one session or a NotFound error
func (r *SessionRepository) FindByID(ctx context.Context, userID, sessionID string) (*entities.Session, error) {
	sessions, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, session := range sessions {
		if session.ID() == sessionID {
			return session, nil
		}
	}
	return nil, pkgerrors.NewNotFoundError("session")
}

// UpdateWeakPointStatus rewrites every session item whose weak points
// changed. Sessions are small, so read-modify-write is acceptable here.
func (r *SessionRepository) UpdateWeakPointStatus(ctx context.Context, userID, weakPointID string, status valueobjects.StudyStatus) error {
	sessions, err := r.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	found := false
	for _, session := range sessions {
		ok, err := session.UpdateWeakPointStatus(weakPointID, status)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		found = true

		item, err := attributevalue.MarshalMap(toItem(session))
		if err != nil {
			return pkgerrors.NewDatabaseError("failed to marshal session", err)
		}
		if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.table),
			Item:      item,
		}); err != nil {
			return pkgerrors.NewDatabaseError("failed to update session", err)
		}
		session.MarkEventsAsCommitted()
	}

	if !found {
		return pkgerrors.NewNotFoundError("weak point")
	}
	return nil
}

func toItem(session *entities.Session) sessionItem {
	m := session.Map()
	return sessionItem{
		PK:         userPK(session.UserID()),
		SK:         sessionSK(session.CreatedAt(), session.ID()),
		SessionID:  session.ID(),
		UserID:     session.UserID(),
		Theme:      session.Theme(),
		CreatedAt:  session.CreatedAt().UTC().Format(time.RFC3339Nano),
		Messages:   session.Messages(),
		WeakPoints: session.WeakPoints(),
		Center:     m.Center,
		Nodes:      m.Nodes,
	}
}

func fromItem(item sessionItem) (*entities.Session, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, item.CreatedAt)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("invalid stored timestamp", err)
	}

	return entities.ReconstructSession(
		item.SessionID,
		item.UserID,
		item.Theme,
		createdAt,
		item.Messages,
		item.WeakPoints,
		valueobjects.UnderstandingMap{Center: item.Center, Nodes: item.Nodes},
	)
}
