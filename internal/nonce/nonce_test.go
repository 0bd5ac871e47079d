package nonce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerify(t *testing.T) {
	i := New("secret", time.Hour)

	token, err := i.Issue(ActionSendProducts, "shop-admin")
	require.NoError(t, err)

	assert.NoError(t, i.Verify(token, ActionSendProducts, "shop-admin"))
	assert.ErrorIs(t, i.Verify(token, ActionUpdateSettings, "shop-admin"), ErrInvalidToken)
	assert.ErrorIs(t, i.Verify("", ActionSendProducts, "shop-admin"), ErrInvalidToken)
	assert.ErrorIs(t, New("other", time.Hour).Verify(token, ActionSendProducts, "shop-admin"), ErrInvalidToken)
}

func TestVerify_BoundToSubject(t *testing.T) {
	i := New("secret", time.Hour)

	token, err := i.Issue(ActionUpdateSettings, "shop-admin")
	require.NoError(t, err)

	assert.ErrorIs(t, i.Verify(token, ActionUpdateSettings, "someone-else"), ErrInvalidToken)
	assert.ErrorIs(t, i.Verify(token, ActionUpdateSettings, ""), ErrInvalidToken)

	_, err = i.Issue(ActionUpdateSettings, "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	i := New("secret", time.Minute)
	issued := time.Now()
	i.now = func() time.Time { return issued }

	token, err := i.Issue(ActionUpdateSettings, "shop-admin")
	require.NoError(t, err)

	i.now = func() time.Time { return issued.Add(2 * time.Minute) }
	assert.ErrorIs(t, i.Verify(token, ActionUpdateSettings, "shop-admin"), ErrInvalidToken)
}
