package database

import (
	"context"
	"testing"

	appconfig "university_billing/internal/config"
)

func TestNewDynamoDBConfig(t *testing.T) {
	cfg := appconfig.Config{
		AWSRegion:          "sa-east-1",
		AWSAccessKeyID:     "local",
		AWSSecretAccessKey: "local",
		DynamoDBEndpoint:   "http://localhost:8000",
	}
	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if awsCfg.Region != "sa-east-1" {
		t.Fatalf("expected region sa-east-1, got %s", awsCfg.Region)
	}
	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	if err != nil || creds.AccessKeyID != "local" {
		t.Fatalf("unexpected credentials %+v %v", creds, err)
	}
	if awsCfg.EndpointResolverWithOptions == nil {
		t.Fatalf("expected custom endpoint resolver")
	}
}

func TestConnectPostgres_BadURL(t *testing.T) {
	if _, err := ConnectPostgres(context.Background(), "://not-a-url"); err == nil {
		t.Fatalf("expected parse error")
	}
}
