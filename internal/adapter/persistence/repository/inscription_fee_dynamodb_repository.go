package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"university_billing/internal/domain/entities"
	"university_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultFeesTableName = "inscription_fees"
	feesStudentIDIndex   = "student_id-index"
)

type inscriptionFeeItem struct {
	ID            string `dynamodbav:"id"`
	StudentID     string `dynamodbav:"student_id"`
	StudentName   string `dynamodbav:"student_name"`
	StudentEmail  string `dynamodbav:"student_email"`
	AcademicYear  string `dynamodbav:"academic_year"`
	Amount        string `dynamodbav:"amount"`
	Currency      string `dynamodbav:"currency"`
	PaymentStatus string `dynamodbav:"payment_status"`
	PaidAmount    string `dynamodbav:"paid_amount"`
	DueDate       string `dynamodbav:"due_date"`
	PaymentDate   string `dynamodbav:"payment_date,omitempty"`
	PaymentMethod string `dynamodbav:"payment_method,omitempty"`
	TransactionID string `dynamodbav:"transaction_id,omitempty"`
	Notes         string `dynamodbav:"notes,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
	CreatedBy     string `dynamodbav:"created_by,omitempty"`
	UpdatedBy     string `dynamodbav:"updated_by,omitempty"`
}

// InscriptionFeeDynamoRepository persists InscriptionFee entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: student_id-index (PK: student_id)
//
// Amounts are stored as decimal strings so no precision is lost.

type InscriptionFeeDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IInscriptionFeeRepository = (*InscriptionFeeDynamoRepository)(nil)

func NewInscriptionFeeDynamoRepository(ddb DynamoDBAPI, tableName string) *InscriptionFeeDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = DefaultFeesTableName
	}
	return &InscriptionFeeDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *InscriptionFeeDynamoRepository) Create(ctx context.Context, fee entities.InscriptionFee) (entities.InscriptionFee, error) {
	av, err := attributevalue.MarshalMap(toInscriptionFeeItem(fee))
	if err != nil {
		return entities.InscriptionFee{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.InscriptionFee{}, interfaces.ErrConflict
		}
		return entities.InscriptionFee{}, err
	}
	return fee, nil
}

func (r *InscriptionFeeDynamoRepository) GetByID(ctx context.Context, id string) (entities.InscriptionFee, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InscriptionFee{}, err
	}
	if len(out.Item) == 0 {
		return entities.InscriptionFee{}, nil
	}
	return unmarshalInscriptionFee(out.Item)
}

// List scans the whole table; results are ordered by creation time, newest first.
func (r *InscriptionFeeDynamoRepository) List(ctx context.Context) ([]entities.InscriptionFee, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})

	fees := []entities.InscriptionFee{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			fee, err := unmarshalInscriptionFee(raw)
			if err != nil {
				return nil, err
			}
			fees = append(fees, fee)
		}
	}
	sortFees(fees)
	return fees, nil
}

func (r *InscriptionFeeDynamoRepository) ListByStudentID(ctx context.Context, studentID string) ([]entities.InscriptionFee, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(feesStudentIDIndex),
		KeyConditionExpression: aws.String("student_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: studentID},
		},
	})

	fees := []entities.InscriptionFee{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			fee, err := unmarshalInscriptionFee(raw)
			if err != nil {
				return nil, err
			}
			fees = append(fees, fee)
		}
	}
	sortFees(fees)
	return fees, nil
}

func (r *InscriptionFeeDynamoRepository) Replace(ctx context.Context, fee entities.InscriptionFee) (entities.InscriptionFee, error) {
	av, err := attributevalue.MarshalMap(toInscriptionFeeItem(fee))
	if err != nil {
		return entities.InscriptionFee{}, err
	}
	ok, err := putExisting(ctx, r.ddb, r.tableName, av)
	if err != nil || !ok {
		return entities.InscriptionFee{}, err
	}
	return fee, nil
}

// UpdatePayment writes every payment field of the change in one UpdateItem.
// Empty transaction id and notes are removed from the item.
func (r *InscriptionFeeDynamoRepository) UpdatePayment(ctx context.Context, id string, change entities.PaymentChange) (entities.InscriptionFee, error) {
	set := []string{
		"#payment_status = :payment_status",
		"#paid_amount = :paid_amount",
		"#payment_method = :payment_method",
		"#payment_date = :payment_date",
		"#updated_at = :updated_at",
	}
	var remove []string
	values := map[string]types.AttributeValue{
		":payment_status": &types.AttributeValueMemberS{Value: string(change.Status)},
		":paid_amount":    &types.AttributeValueMemberS{Value: change.PaidAmount.String()},
		":payment_method": &types.AttributeValueMemberS{Value: change.PaymentMethod},
		":payment_date":   &types.AttributeValueMemberS{Value: formatTime(change.PaymentDate)},
		":updated_at":     &types.AttributeValueMemberS{Value: formatTime(change.UpdatedAt)},
	}
	names := map[string]string{
		"#payment_status": "payment_status",
		"#paid_amount":    "paid_amount",
		"#payment_method": "payment_method",
		"#payment_date":   "payment_date",
		"#updated_at":     "updated_at",
		"#transaction_id": "transaction_id",
		"#notes":          "notes",
		"#updated_by":     "updated_by",
	}

	optional := []struct{ name, value string }{
		{"transaction_id", change.TransactionID},
		{"notes", change.Notes},
		{"updated_by", change.UpdatedBy},
	}
	for _, f := range optional {
		if f.value == "" {
			remove = append(remove, "#"+f.name)
			continue
		}
		set = append(set, "#"+f.name+" = :"+f.name)
		values[":"+f.name] = &types.AttributeValueMemberS{Value: f.value}
	}

	expr := "SET " + strings.Join(set, ", ")
	if len(remove) > 0 {
		expr += " REMOVE " + strings.Join(remove, ", ")
	}

	attrs, err := updateExisting(ctx, r.ddb, r.tableName, id, expr, values, names)
	if err != nil || len(attrs) == 0 {
		return entities.InscriptionFee{}, err
	}
	return unmarshalInscriptionFee(attrs)
}

func (r *InscriptionFeeDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteExisting(ctx, r.ddb, r.tableName, id)
}

func unmarshalInscriptionFee(raw map[string]types.AttributeValue) (entities.InscriptionFee, error) {
	var it inscriptionFeeItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.InscriptionFee{}, err
	}
	return fromInscriptionFeeItem(it)
}

func toInscriptionFeeItem(f entities.InscriptionFee) inscriptionFeeItem {
	it := inscriptionFeeItem{
		ID:            f.ID,
		StudentID:     f.StudentID,
		StudentName:   f.StudentName,
		StudentEmail:  f.StudentEmail,
		AcademicYear:  f.AcademicYear,
		Amount:        f.Amount.String(),
		Currency:      f.Currency,
		PaymentStatus: string(f.PaymentStatus),
		PaidAmount:    f.PaidAmount.String(),
		DueDate:       formatTime(f.DueDate),
		PaymentMethod: f.PaymentMethod,
		TransactionID: f.TransactionID,
		Notes:         f.Notes,
		CreatedAt:     formatTime(f.CreatedAt),
		UpdatedAt:     formatTime(f.UpdatedAt),
		CreatedBy:     f.CreatedBy,
		UpdatedBy:     f.UpdatedBy,
	}
	if f.PaymentDate != nil {
		it.PaymentDate = formatTime(*f.PaymentDate)
	}
	return it
}

func fromInscriptionFeeItem(it inscriptionFeeItem) (entities.InscriptionFee, error) {
	amount, err := parseDecimal("amount", it.Amount)
	if err != nil {
		return entities.InscriptionFee{}, err
	}
	paid, err := parseDecimal("paid_amount", it.PaidAmount)
	if err != nil {
		return entities.InscriptionFee{}, err
	}
	due, err := parseTime("due_date", it.DueDate)
	if err != nil {
		return entities.InscriptionFee{}, err
	}
	if due.IsZero() {
		return entities.InscriptionFee{}, fmt.Errorf("corrupt due_date: fee %s has none", it.ID)
	}
	created, err := parseTime("created_at", it.CreatedAt)
	if err != nil {
		return entities.InscriptionFee{}, err
	}
	updated, err := parseTime("updated_at", it.UpdatedAt)
	if err != nil {
		return entities.InscriptionFee{}, err
	}

	f := entities.InscriptionFee{
		ID:            it.ID,
		StudentID:     it.StudentID,
		StudentName:   it.StudentName,
		StudentEmail:  it.StudentEmail,
		AcademicYear:  it.AcademicYear,
		Amount:        amount,
		Currency:      it.Currency,
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		PaidAmount:    paid,
		DueDate:       due,
		PaymentMethod: it.PaymentMethod,
		TransactionID: it.TransactionID,
		Notes:         it.Notes,
		CreatedAt:     created,
		UpdatedAt:     updated,
		CreatedBy:     it.CreatedBy,
		UpdatedBy:     it.UpdatedBy,
	}
	if it.PaymentDate != "" {
		pd, err := parseTime("payment_date", it.PaymentDate)
		if err != nil {
			return entities.InscriptionFee{}, err
		}
		f.PaymentDate = &pd
	}
	return f, nil
}

func sortFees(fees []entities.InscriptionFee) {
	sort.SliceStable(fees, func(i, j int) bool {
		return fees[i].CreatedAt.After(fees[j].CreatedAt)
	})
}
