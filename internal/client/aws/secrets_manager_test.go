package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyphera/onramp-engine/internal/logger"
)

func init() {
	logger.InitLogger("test")
}

type fakeSecrets struct {
	value *string
	err   error
	calls int
}

func (f *fakeSecrets) GetSecretValue(_ context.Context, _ *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: f.value}, nil
}

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestGetSecretString(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		svc       *fakeSecrets
		want      string
		wantErr   bool
		wantCalls int
	}{
		{
			name:      "plain secret from secrets manager",
			env:       map[string]string{"KEY_ARN": "arn:secret"},
			svc:       &fakeSecrets{value: aws.String("abc123")},
			want:      "abc123",
			wantCalls: 1,
		},
		{
			name:      "single key json is unwrapped",
			env:       map[string]string{"KEY_ARN": "arn:secret"},
			svc:       &fakeSecrets{value: aws.String(`{"api_key":"xyz"}`)},
			want:      "xyz",
			wantCalls: 1,
		},
		{
			name:      "multi key json returned raw",
			env:       map[string]string{"KEY_ARN": "arn:secret"},
			svc:       &fakeSecrets{value: aws.String(`{"a":"1","b":"2"}`)},
			want:      `{"a":"1","b":"2"}`,
			wantCalls: 1,
		},
		{
			name:      "fetch failure falls back to env",
			env:       map[string]string{"KEY_ARN": "arn:secret", "KEY": "fallback"},
			svc:       &fakeSecrets{err: errors.New("access denied")},
			want:      "fallback",
			wantCalls: 1,
		},
		{
			name: "no arn uses env without calling aws",
			env:  map[string]string{"KEY": "direct"},
			svc:  &fakeSecrets{},
			want: "direct",
		},
		{
			name:    "nothing configured",
			env:     map[string]string{},
			svc:     &fakeSecrets{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewSecretsManagerClientWithAPI(tt.svc, envOf(tt.env))
			got, err := client.GetSecretString(context.Background(), "KEY_ARN", "KEY")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCalls, tt.svc.calls)
		})
	}
}
