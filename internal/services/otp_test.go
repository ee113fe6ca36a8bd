package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Otp_GenerateAndVerify_ShouldRoundTrip(t *testing.T) {

	store := NewOtpStore()

	code := store.Generate("someone@mail.test")
	assert.Len(t, code, 6)

	assert.True(t, store.Verify("someone@mail.test", code))
}

func Test_Otp_Verify_ShouldConsumeCode(t *testing.T) {

	store := NewOtpStore()

	code := store.Generate("someone@mail.test")
	assert.True(t, store.Verify("someone@mail.test", code))
	assert.False(t, store.Verify("someone@mail.test", code))
}

func Test_Otp_Verify_WhenWrongCode_ShouldKeepStoredCode(t *testing.T) {

	store := NewOtpStore()

	code := store.Generate("someone@mail.test")
	assert.False(t, store.Verify("someone@mail.test", "000000"))
	assert.True(t, store.Verify("someone@mail.test", code))
}

func Test_Otp_Verify_WhenUnknownEmail_ShouldFail(t *testing.T) {

	store := NewOtpStore()
	assert.False(t, store.Verify("nobody@mail.test", "123456"))
}
