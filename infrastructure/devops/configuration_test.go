package devops

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeParameters struct {
	values map[string]string
	input  *ssm.GetParameterInput
}

func (f *fakeParameters) GetParameter(ctx context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	f.input = in
	v, ok := f.values[aws.ToString(in.Name)]
	if !ok {
		return nil, errors.New("ParameterNotFound")
	}
	return &ssm.GetParameterOutput{Parameter: &types.Parameter{Value: aws.String(v)}}, nil
}

func TestLoadConfigDocument(t *testing.T) {
	fake := &fakeParameters{values: map[string]string{"/hrms/config": "server:\n  port: 8080\n"}}

	doc, err := LoadConfigDocument(context.Background(), fake, "/hrms/config")
	require.NoError(t, err)
	assert.Equal(t, "server:\n  port: 8080\n", string(doc))
	assert.True(t, aws.ToBool(fake.input.WithDecryption))
}

func TestLoadConfigDocument_Missing(t *testing.T) {
	_, err := LoadConfigDocument(context.Background(), &fakeParameters{}, "/hrms/missing")
	assert.ErrorContains(t, err, "/hrms/missing")
}
