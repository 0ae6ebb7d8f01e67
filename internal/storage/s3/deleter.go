package s3store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// MaxBatchSize is the per-request object cap of the S3 bulk-delete API.
const MaxBatchSize = 1000

// DeleteError is the per-key failure record from a bulk-delete response.
type DeleteError struct {
	Key     string
	Code    string
	Message string
}

// BatchResult reports the per-key outcomes of one bulk-delete call. Each key
// succeeds or fails independently.
type BatchResult struct {
	Deleted []string
	Errors  []DeleteError
}

// DeleteBatch issues one bulk-delete request for up to MaxBatchSize keys.
// A returned error means the call itself failed and nothing in the batch
// should be assumed deleted.
func (c *Client) DeleteBatch(ctx context.Context, bucket string, keys []string) (BatchResult, error) {
	var res BatchResult
	if len(keys) == 0 {
		return res, nil
	}
	if len(keys) > MaxBatchSize {
		return res, fmt.Errorf("delete batch: %d keys exceeds the %d-key limit", len(keys), MaxBatchSize)
	}

	objects := make([]types.ObjectIdentifier, 0, len(keys))
	for _, k := range keys {
		objects = append(objects, types.ObjectIdentifier{Key: aws.String(k)})
	}

	out, err := c.api.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(bucket),
		Delete: &types.Delete{
			Objects: objects,
			Quiet:   aws.Bool(false),
		},
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return res, fmt.Errorf("delete objects: %s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
		}
		return res, fmt.Errorf("delete objects: %w", err)
	}

	for _, d := range out.Deleted {
		if d.Key != nil {
			res.Deleted = append(res.Deleted, aws.ToString(d.Key))
		}
	}
	for _, e := range out.Errors {
		res.Errors = append(res.Errors, DeleteError{
			Key:     aws.ToString(e.Key),
			Code:    aws.ToString(e.Code),
			Message: aws.ToString(e.Message),
		})
	}
	return res, nil
}
