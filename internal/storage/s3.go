// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage is the upload collaborator: it accepts a binary and
// returns a stable public URL. The editing surface stores that URL as an
// opaque string inside section content. Backed by any S3-compatible
// endpoint with path-style addressing.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Client wraps an S3 client for media uploads to a single public bucket.
type Client struct {
	s3        *s3.Client
	bucket    string
	endpoint  string
	publicURL string // optional CDN/direct URL for uploaded files
}

// New creates an S3 storage client. Returns (nil, nil) if endpoint or
// credentials are empty, allowing the app to start without storage —
// uploads are then disabled, nothing else is affected.
func New(endpoint, region, accessKey, secretKey, bucket, publicURL string) (*Client, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}

	endpoint = strings.TrimRight(endpoint, "/")

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &Client{
		s3:        s3Client,
		bucket:    bucket,
		endpoint:  endpoint,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload stores an object with public-read ACL and returns its stable URL.
func (c *Client) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %s: %w", key, err)
	}
	return c.FileURL(key), nil
}

// Delete removes an uploaded object. Called when the editing surface
// releases a media reference that is no longer used by any section.
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", key, err)
	}
	return nil
}

// FileURL returns the public URL for an uploaded object. Uses the
// configured public URL if set, otherwise builds a path-style URL.
func (c *Client) FileURL(key string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + key
	}
	return c.endpoint + "/" + c.bucket + "/" + key
}

// ExtractKey extracts the object key from a public file URL. Returns
// ("", false) if the URL does not belong to this storage.
func (c *Client) ExtractKey(rawURL string) (string, bool) {
	if c.publicURL != "" {
		prefix := c.publicURL + "/"
		if strings.HasPrefix(rawURL, prefix) {
			return rawURL[len(prefix):], true
		}
	}
	prefix := c.endpoint + "/" + c.bucket + "/"
	if strings.HasPrefix(rawURL, prefix) {
		return rawURL[len(prefix):], true
	}
	return "", false
}
