// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

// Package storage provides presigned-URL access to the S3-compatible media
// bucket used by the gallery and team roster.
//
// # Architecture
//
// The API never proxies media bytes. Uploads happen directly from the admin
// SPA to the bucket via a short-lived presigned PUT; public display uses
// presigned GETs. This keeps large transfers off the API workers.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ravenstrike/rsf-api/pkg/uuid"
)

// PresignTTL is the validity window for presigned upload/download URLs.
const PresignTTL = 15 * time.Minute

// Config carries the S3-compatible endpoint settings (MinIO, R2, AWS).
type Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// Presigner issues presigned PUT/GET URLs against a single media bucket.
type Presigner struct {
	client *s3.PresignClient
	bucket string
}

// NewPresigner builds the S3 presign client from static credentials.
func NewPresigner(ctx context.Context, cfg Config) (*Presigner, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("storage: failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		// Path-style addressing is required by MinIO-style endpoints.
		o.UsePathStyle = cfg.Endpoint != ""
	})

	return &Presigner{
		client: s3.NewPresignClient(client),
		bucket: cfg.Bucket,
	}, nil
}

// NewStorageKey returns a date-partitioned object key for a fresh upload.
func NewStorageKey(prefix string) string {
	now := time.Now().UTC()
	return fmt.Sprintf("%s/%d/%02d/%s", prefix, now.Year(), now.Month(), uuid.New())
}

// PresignPut returns a presigned PUT URL for the given object key.
func (p *Presigner) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	req, err := p.client.PresignPutObject(ctx, input, s3.WithPresignExpires(PresignTTL))
	if err != nil {
		return "", fmt.Errorf("storage: presign put failed: %w", err)
	}

	return req.URL, nil
}

// PresignGet returns a presigned GET URL for the given object key.
func (p *Presigner) PresignGet(ctx context.Context, key string) (string, error) {
	req, err := p.client.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(PresignTTL))
	if err != nil {
		return "", fmt.Errorf("storage: presign get failed: %w", err)
	}

	return req.URL, nil
}
