package repository

import (
	"context"
	"time"

	"billing_saas/internal/domain/entities"
	"billing_saas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultInvoicesTableName      = "invoices"
	defaultTimeEntriesTableName   = "time_entries"
	defaultClientsTableName       = "clients"
	defaultOrganizationsTableName = "organizations"

	timeEntriesInvoiceIDIndex = "invoice_id-index"
	timeEntriesClientIDIndex  = "client_id-index"
)

type invoiceItem struct {
	ID        string `dynamodbav:"id"`
	ClientID  string `dynamodbav:"client_id"`
	Number    string `dynamodbav:"number"`
	Tax       string `dynamodbav:"tax,omitempty"`
	Discount  string `dynamodbav:"discount,omitempty"`
	DueDate   string `dynamodbav:"due_date"`
	CreatedAt string `dynamodbav:"created_at"`
	PaidAt    string `dynamodbav:"paid_at,omitempty"`
}

type timeEntryItem struct {
	ID          string `dynamodbav:"id"`
	ClientID    string `dynamodbav:"client_id"`
	InvoiceID   string `dynamodbav:"invoice_id,omitempty"`
	Description string `dynamodbav:"description"`
	StartTime   string `dynamodbav:"start_time"`
	EndTime     string `dynamodbav:"end_time,omitempty"`
	HourlyRate  string `dynamodbav:"hourly_rate,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

type clientItem struct {
	ID             string `dynamodbav:"id"`
	OrganizationID string `dynamodbav:"organization_id"`
	Name           string `dynamodbav:"name"`
	Email          string `dynamodbav:"email"`
	HourlyRate     string `dynamodbav:"hourly_rate,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	DeletedAt      string `dynamodbav:"deleted_at,omitempty"`
}

type organizationItem struct {
	ID      string `dynamodbav:"id"`
	Name    string `dynamodbav:"name"`
	Email   string `dynamodbav:"email"`
	Address string `dynamodbav:"address"`
}

// BillingDynamoRepository reads the billing snapshot from DynamoDB.
//
// Table requirements:
//   - invoices:      PK id
//   - time_entries:  PK id, GSI invoice_id-index (PK: invoice_id),
//     GSI client_id-index (PK: client_id)
//   - clients:       PK id
//   - organizations: PK id
//
// This repository is read-only on purpose: invoices, entries and clients are
// owned by the main application; the document service only consumes them.
type BillingDynamoRepository struct {
	ddb                *dynamodb.Client
	invoicesTable      string
	timeEntriesTable   string
	clientsTable       string
	organizationsTable string
}

var _ interfaces.IBillingSnapshotRepository = (*BillingDynamoRepository)(nil)

func NewBillingDynamoRepository(ddb *dynamodb.Client) *BillingDynamoRepository {
	return &BillingDynamoRepository{
		ddb:                ddb,
		invoicesTable:      getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
		timeEntriesTable:   getenvDefault("TIME_ENTRIES_TABLE", defaultTimeEntriesTableName),
		clientsTable:       getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
		organizationsTable: getenvDefault("ORGANIZATIONS_TABLE", defaultOrganizationsTableName),
	}
}

// GetInvoiceSnapshot materializes the full join for one invoice with
// consistent reads. A missing invoice returns a zero-value snapshot, not an
// error; the use case decides what not-found means.
func (r *BillingDynamoRepository) GetInvoiceSnapshot(ctx context.Context, invoiceID string) (entities.InvoiceSnapshot, error) {
	invoice, err := r.getInvoice(ctx, invoiceID)
	if err != nil {
		return entities.InvoiceSnapshot{}, err
	}
	if invoice.ID == "" {
		return entities.InvoiceSnapshot{}, nil
	}

	entries, err := r.queryEntries(ctx, timeEntriesInvoiceIDIndex, "invoice_id", invoiceID)
	if err != nil {
		return entities.InvoiceSnapshot{}, err
	}

	// The client is read even when soft-deleted: finalized invoices keep
	// rendering historically.
	client, err := r.getClient(ctx, invoice.ClientID)
	if err != nil {
		return entities.InvoiceSnapshot{}, err
	}

	var org entities.Organization
	if client.OrganizationID != "" {
		org, err = r.getOrganization(ctx, client.OrganizationID)
		if err != nil {
			return entities.InvoiceSnapshot{}, err
		}
	}

	return entities.InvoiceSnapshot{
		Invoice:      invoice,
		Client:       client,
		Organization: org,
		Entries:      entries,
	}, nil
}

// GetClientWindow loads a client's entries inside [from, to) plus the
// invoices those entries reference. Zero bounds leave that side open.
func (r *BillingDynamoRepository) GetClientWindow(ctx context.Context, clientID string, from, to time.Time) (entities.ClientWindow, error) {
	client, err := r.getClient(ctx, clientID)
	if err != nil {
		return entities.ClientWindow{}, err
	}
	if client.ID == "" {
		return entities.ClientWindow{}, nil
	}

	all, err := r.queryEntries(ctx, timeEntriesClientIDIndex, "client_id", clientID)
	if err != nil {
		return entities.ClientWindow{}, err
	}

	entries := make([]entities.TimeEntry, 0, len(all))
	for _, e := range all {
		if !from.IsZero() && e.StartTime.Before(from) {
			continue
		}
		if !to.IsZero() && !e.StartTime.Before(to) {
			continue
		}
		entries = append(entries, e)
	}

	invoices := make(map[string]entities.Invoice)
	for _, e := range entries {
		if e.InvoiceID == nil {
			continue
		}
		if _, ok := invoices[*e.InvoiceID]; ok {
			continue
		}
		inv, err := r.getInvoice(ctx, *e.InvoiceID)
		if err != nil {
			return entities.ClientWindow{}, err
		}
		if inv.ID != "" {
			invoices[inv.ID] = inv
		}
	}

	return entities.ClientWindow{Client: client, Entries: entries, Invoices: invoices}, nil
}

func (r *BillingDynamoRepository) getInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.invoicesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *BillingDynamoRepository) getClient(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.clientsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *BillingDynamoRepository) getOrganization(ctx context.Context, id string) (entities.Organization, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.organizationsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Organization{}, err
	}
	if len(out.Item) == 0 {
		return entities.Organization{}, nil
	}

	var it organizationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Organization{}, err
	}
	return entities.Organization{ID: it.ID, Name: it.Name, Email: it.Email, Address: it.Address}, nil
}

func (r *BillingDynamoRepository) queryEntries(ctx context.Context, index, keyAttr, keyValue string) ([]entities.TimeEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.timeEntriesTable),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyAttr + " = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: keyValue},
		},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.TimeEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it timeEntryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromTimeEntryItem(it))
	}
	return entries, nil
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Invoice{
		ID:        it.ID,
		ClientID:  it.ClientID,
		Number:    it.Number,
		Tax:       parseDecimal(it.Tax),
		Discount:  parseDecimal(it.Discount),
		DueDate:   dueDate,
		CreatedAt: createdAt,
		PaidAt:    parseTime(it.PaidAt),
	}
}

func fromTimeEntryItem(it timeEntryItem) entities.TimeEntry {
	startTime, _ := time.Parse(time.RFC3339Nano, it.StartTime)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	var invoiceID *string
	if it.InvoiceID != "" {
		id := it.InvoiceID
		invoiceID = &id
	}

	return entities.TimeEntry{
		ID:          it.ID,
		ClientID:    it.ClientID,
		InvoiceID:   invoiceID,
		Description: it.Description,
		StartTime:   startTime,
		EndTime:     parseTime(it.EndTime),
		HourlyRate:  parseDecimal(it.HourlyRate),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

func fromClientItem(it clientItem) entities.Client {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Client{
		ID:             it.ID,
		OrganizationID: it.OrganizationID,
		Name:           it.Name,
		Email:          it.Email,
		HourlyRate:     parseDecimal(it.HourlyRate),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      parseTime(it.DeletedAt),
	}
}

func parseDecimal(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
