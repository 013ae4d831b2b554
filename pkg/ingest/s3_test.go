package ingest

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dd0wney/cluso-social/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectGetter struct {
	body   string
	err    error
	bucket string
	key    string
}

func (f *fakeObjectGetter) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.bucket = aws.ToString(params.Bucket)
	f.key = aws.ToString(params.Key)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestS3Source_Load(t *testing.T) {
	getter := &fakeObjectGetter{body: sampleCSV}
	src := NewS3Source(getter, "social", "graphs/people.csv")
	assert.Equal(t, KindS3, src.Kind())

	records, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, "social", getter.bucket)
	assert.Equal(t, "graphs/people.csv", getter.key)
}

func TestS3Source_GetError(t *testing.T) {
	boom := errors.New("access denied")
	_, err := NewS3Source(&fakeObjectGetter{err: boom}, "b", "k").Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "s3://b/k")
}

func TestS3Source_ParseError(t *testing.T) {
	_, err := NewS3Source(&fakeObjectGetter{body: "1,Ann\n"}, "b", "k").Load(context.Background())
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestLoadAWSConfig_StaticCredentials(t *testing.T) {
	cfg := config.SourceConfig{
		Kind:            KindS3,
		Bucket:          "social",
		Key:             "people.csv",
		Region:          "eu-west-1",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
	}

	awsCfg, err := loadAWSConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", awsCfg.Region)

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKIDEXAMPLE", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)

	src, err := NewS3SourceFromConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, KindS3, src.Kind())
}
