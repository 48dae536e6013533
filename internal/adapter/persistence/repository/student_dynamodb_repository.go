package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"university_billing/internal/domain/entities"
	"university_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultStudentsTableName = "students"

type studentItem struct {
	ID                   string       `dynamodbav:"id"`
	StudentNumber        string       `dynamodbav:"student_number"`
	FirstName            string       `dynamodbav:"first_name"`
	LastName             string       `dynamodbav:"last_name"`
	Email                string       `dynamodbav:"email"`
	PhoneNumber          string       `dynamodbav:"phone_number"`
	Enabled              bool         `dynamodbav:"enabled"`
	InscriptionFeeStatus string       `dynamodbav:"inscription_fee_status"`
	Courses              []courseItem `dynamodbav:"courses"`
	Grades               []gradeItem  `dynamodbav:"grades"`
	CreatedAt            string       `dynamodbav:"created_at"`
	UpdatedAt            string       `dynamodbav:"updated_at"`
}

type courseItem struct {
	CourseID   string `dynamodbav:"course_id"`
	CourseName string `dynamodbav:"course_name"`
	CourseCode string `dynamodbav:"course_code"`
	Credits    int    `dynamodbav:"credits"`
}

type gradeItem struct {
	CourseID   string  `dynamodbav:"course_id"`
	CourseName string  `dynamodbav:"course_name"`
	Grade      float64 `dynamodbav:"grade"`
	Semester   string  `dynamodbav:"semester"`
}

// StudentDynamoRepository persists Student records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Lookups by email or student number scan the table with a filter.
type StudentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IStudentRepository = (*StudentDynamoRepository)(nil)

func NewStudentDynamoRepository(ddb DynamoDBAPI, tableName string) *StudentDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = DefaultStudentsTableName
	}
	return &StudentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *StudentDynamoRepository) Create(ctx context.Context, s entities.Student) (entities.Student, error) {
	av, err := attributevalue.MarshalMap(toStudentItem(s))
	if err != nil {
		return entities.Student{}, err
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
			return entities.Student{}, interfaces.ErrConflict
		}
		return entities.Student{}, err
	}
	return s, nil
}

func (r *StudentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Student, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Student{}, err
	}
	if len(out.Item) == 0 {
		return entities.Student{}, nil
	}
	return unmarshalStudent(out.Item)
}

// FindByEmailOrNumber matches either key; an empty key is left out of the filter.
func (r *StudentDynamoRepository) FindByEmailOrNumber(ctx context.Context, email, studentNumber string) (entities.Student, error) {
	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if email != "" {
		conds = append(conds, "#email = :email")
		names["#email"] = "email"
		values[":email"] = &types.AttributeValueMemberS{Value: email}
	}
	if studentNumber != "" {
		conds = append(conds, "#student_number = :student_number")
		names["#student_number"] = "student_number"
		values[":student_number"] = &types.AttributeValueMemberS{Value: studentNumber}
	}
	if len(conds) == 0 {
		return entities.Student{}, nil
	}

	students, err := r.scan(ctx, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		ConsistentRead:            aws.Bool(true),
		FilterExpression:          aws.String(strings.Join(conds, " OR ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil || len(students) == 0 {
		return entities.Student{}, err
	}
	return students[0], nil
}

// List returns every student ordered by last name, then first name.
func (r *StudentDynamoRepository) List(ctx context.Context) ([]entities.Student, error) {
	students, err := r.scan(ctx, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(students, func(i, j int) bool {
		if students[i].LastName != students[j].LastName {
			return students[i].LastName < students[j].LastName
		}
		return students[i].FirstName < students[j].FirstName
	})
	return students, nil
}

func (r *StudentDynamoRepository) Replace(ctx context.Context, s entities.Student) (entities.Student, error) {
	av, err := attributevalue.MarshalMap(toStudentItem(s))
	if err != nil {
		return entities.Student{}, err
	}
	ok, err := putExisting(ctx, r.ddb, r.tableName, av)
	if err != nil || !ok {
		return entities.Student{}, err
	}
	return s, nil
}

func (r *StudentDynamoRepository) UpdateInscriptionFeeStatus(ctx context.Context, id string, status entities.InscriptionFeeStatus) (entities.Student, error) {
	attrs, err := updateExisting(ctx, r.ddb, r.tableName, id,
		"SET #inscription_fee_status = :status, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		map[string]string{
			"#inscription_fee_status": "inscription_fee_status",
			"#updated_at":             "updated_at",
		},
	)
	if err != nil || len(attrs) == 0 {
		return entities.Student{}, err
	}
	return unmarshalStudent(attrs)
}

func (r *StudentDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteExisting(ctx, r.ddb, r.tableName, id)
}

func (r *StudentDynamoRepository) scan(ctx context.Context, in *dynamodb.ScanInput) ([]entities.Student, error) {
	p := dynamodb.NewScanPaginator(r.ddb, in)
	students := []entities.Student{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			s, err := unmarshalStudent(raw)
			if err != nil {
				return nil, err
			}
			students = append(students, s)
		}
	}
	return students, nil
}

func unmarshalStudent(raw map[string]types.AttributeValue) (entities.Student, error) {
	var it studentItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Student{}, err
	}
	return fromStudentItem(it)
}

func toStudentItem(s entities.Student) studentItem {
	courses := make([]courseItem, 0, len(s.Courses))
	for _, c := range s.Courses {
		courses = append(courses, courseItem(c))
	}
	grades := make([]gradeItem, 0, len(s.Grades))
	for _, g := range s.Grades {
		grades = append(grades, gradeItem(g))
	}
	return studentItem{
		ID:                   s.ID,
		StudentNumber:        s.StudentNumber,
		FirstName:            s.FirstName,
		LastName:             s.LastName,
		Email:                s.Email,
		PhoneNumber:          s.PhoneNumber,
		Enabled:              s.Enabled,
		InscriptionFeeStatus: string(s.InscriptionFeeStatus),
		Courses:              courses,
		Grades:               grades,
		CreatedAt:            formatTime(s.CreatedAt),
		UpdatedAt:            formatTime(s.UpdatedAt),
	}
}

func fromStudentItem(it studentItem) (entities.Student, error) {
	created, err := parseTime("created_at", it.CreatedAt)
	if err != nil {
		return entities.Student{}, err
	}
	updated, err := parseTime("updated_at", it.UpdatedAt)
	if err != nil {
		return entities.Student{}, err
	}
	courses := make([]entities.Course, 0, len(it.Courses))
	for _, c := range it.Courses {
		courses = append(courses, entities.Course(c))
	}
	grades := make([]entities.Grade, 0, len(it.Grades))
	for _, g := range it.Grades {
		grades = append(grades, entities.Grade(g))
	}
	return entities.Student{
		ID:                   it.ID,
		StudentNumber:        it.StudentNumber,
		FirstName:            it.FirstName,
		LastName:             it.LastName,
		Email:                it.Email,
		PhoneNumber:          it.PhoneNumber,
		Enabled:              it.Enabled,
		InscriptionFeeStatus: entities.InscriptionFeeStatus(it.InscriptionFeeStatus),
		Courses:              courses,
		Grades:               grades,
		CreatedAt:            created,
		UpdatedAt:            updated,
	}, nil
}
