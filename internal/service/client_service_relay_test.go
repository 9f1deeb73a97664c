package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/cookie-relay/internal/adapter"
	"github.com/MKhiriev/cookie-relay/internal/crypto"
	"github.com/MKhiriev/cookie-relay/internal/logger"
	"github.com/MKhiriev/cookie-relay/internal/mock"
	"github.com/MKhiriev/cookie-relay/models"
)

func newTestClientRelaySvc(t *testing.T) (ClientRelayService, *mock.MockRelayAdapter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockRelayAdapter(ctrl)

	return NewClientRelayService(mockAdapter, crypto.NewCodec(), logger.Nop()), mockAdapter
}

// ── Push ─────────────────────────────────────────────────────────────────────

func TestClientRelayService_Push_EncryptsLocally(t *testing.T) {
	svc, mockAdapter := newTestClientRelaySvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Update(ctx, models.UpdateRequest{UUID: "abc123", Encrypted: fixedVector, CryptoType: crypto.FixedIVCBCTag}).
		Return(nil)

	id, err := svc.Push(ctx, models.PushRequest{
		UUID:       "abc123",
		Password:   "secret",
		CryptoType: crypto.FixedIVCBCTag,
		Payload:    json.RawMessage(plainVector),
	})
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)
}

func TestClientRelayService_Push_GeneratesUUID(t *testing.T) {
	svc, mockAdapter := newTestClientRelaySvc(t)

	var sent models.UpdateRequest
	mockAdapter.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.UpdateRequest) error {
			sent = req
			return nil
		})

	id, err := svc.Push(context.Background(), models.PushRequest{Password: "p", Payload: json.RawMessage(`{"a":1}`)})
	require.NoError(t, err)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Equal(t, id, sent.UUID)
	assert.Equal(t, crypto.LegacyTag, sent.CryptoType)

	plain, err := crypto.NewCodec().Decrypt(id, sent.Encrypted, "p", crypto.Legacy)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(plain))
}

func TestClientRelayService_Push_RejectsBadInput(t *testing.T) {
	svc, _ := newTestClientRelaySvc(t)
	ctx := context.Background()

	_, err := svc.Push(ctx, models.PushRequest{UUID: "a", Payload: json.RawMessage(`{not json`)})
	require.ErrorIs(t, err, ErrBadRequest)

	_, err = svc.Push(ctx, models.PushRequest{UUID: "a", CryptoType: "rot13", Payload: json.RawMessage(`{}`)})
	require.ErrorIs(t, err, ErrBadRequest)
	require.ErrorIs(t, err, crypto.ErrUnknownMode)
}

func TestClientRelayService_Push_AdapterError(t *testing.T) {
	svc, mockAdapter := newTestClientRelaySvc(t)

	mockAdapter.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: %s", adapter.ErrStoreNotConfigured, "Internal Server Error: KV not configured"))

	_, err := svc.Push(context.Background(), models.PushRequest{UUID: "a", Password: "p", Payload: json.RawMessage(`{}`)})
	require.ErrorIs(t, err, ErrRelayUnavailable)
}

// ── Pull ─────────────────────────────────────────────────────────────────────

func TestClientRelayService_Pull_WithPasswordUsesRelayDecryption(t *testing.T) {
	svc, mockAdapter := newTestClientRelaySvc(t)
	req := models.GetRequest{UUID: "abc123", Password: "secret", CryptoTypeOverride: crypto.FixedIVCBCTag}

	mockAdapter.EXPECT().GetDecrypted(gomock.Any(), req).Return(json.RawMessage(plainVector), nil)

	got, err := svc.Pull(context.Background(), req)
	require.NoError(t, err)
	assert.JSONEq(t, plainVector, string(got))
}

func TestClientRelayService_Pull_WithoutPasswordReturnsRecord(t *testing.T) {
	svc, mockAdapter := newTestClientRelaySvc(t)

	mockAdapter.EXPECT().
		Get(gomock.Any(), "abc123").
		Return(models.StoredRecord{Encrypted: "ct", CryptoType: crypto.LegacyTag}, nil)

	got, err := svc.Pull(context.Background(), models.GetRequest{UUID: "abc123"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"encrypted":"ct","crypto_type":"legacy"}`, string(got))
}

func TestClientRelayService_Pull_NotFound(t *testing.T) {
	svc, mockAdapter := newTestClientRelaySvc(t)

	mockAdapter.EXPECT().
		Get(gomock.Any(), "missing").
		Return(models.StoredRecord{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, "Not Found"))

	_, err := svc.Pull(context.Background(), models.GetRequest{UUID: "missing"})
	require.ErrorIs(t, err, ErrRecordNotFound)
}

// ── PullLocal ────────────────────────────────────────────────────────────────

func TestClientRelayService_PullLocal(t *testing.T) {
	tests := []struct {
		name     string
		record   models.StoredRecord
		override string
		password string
		wantErr  error
	}{
		{
			name:     "stored mode",
			record:   models.StoredRecord{Encrypted: fixedVector, CryptoType: crypto.FixedIVCBCTag},
			password: "secret",
		},
		{
			name:     "override mode",
			record:   models.StoredRecord{Encrypted: fixedVector, CryptoType: crypto.LegacyTag},
			override: crypto.FixedIVCBCTag,
			password: "secret",
		},
		{
			name:     "wrong password",
			record:   models.StoredRecord{Encrypted: fixedVector, CryptoType: crypto.FixedIVCBCTag},
			password: "nope",
			wantErr:  crypto.ErrDecryption,
		},
		{
			name:     "unknown stored mode",
			record:   models.StoredRecord{Encrypted: fixedVector, CryptoType: "rot13"},
			password: "secret",
			wantErr:  crypto.ErrDecryption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockAdapter := newTestClientRelaySvc(t)
			mockAdapter.EXPECT().Get(gomock.Any(), "abc123").Return(tt.record, nil)

			got, err := svc.PullLocal(context.Background(), models.GetRequest{
				UUID:               "abc123",
				Password:           tt.password,
				CryptoTypeOverride: tt.override,
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, plainVector, string(got))
		})
	}
}

func TestClientRelayService_PullLocal_RequiresPassword(t *testing.T) {
	svc, _ := newTestClientRelaySvc(t)

	_, err := svc.PullLocal(context.Background(), models.GetRequest{UUID: "abc123"})
	require.ErrorIs(t, err, ErrNoPasswordForPull)
}

// ── Health ───────────────────────────────────────────────────────────────────

func TestClientRelayService_Health(t *testing.T) {
	svc, mockAdapter := newTestClientRelaySvc(t)
	want := models.HealthResponse{Status: "OK", Timestamp: "2026-01-02T03:04:05.000Z"}

	mockAdapter.EXPECT().Health(gomock.Any()).Return(want, nil)

	got, err := svc.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientRelayService_Version(t *testing.T) {
	svc, mockAdapter := newTestClientRelaySvc(t)

	mockAdapter.EXPECT().Version(gomock.Any()).Return("1.2.3", nil)

	got, err := svc.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}
