package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedUser_Merge(t *testing.T) {
	name := "Sam"
	c := &CachedUser{User: User{Email: "a@x.com", UserType: "student"}, Token: "tok"}

	c.Merge(&User{ID: "u-1", Email: "a@x.com", UserType: "entrepreneur", PersonalInformation: &PersonalInformation{Name: &name}})

	assert.Equal(t, "tok", c.Token)
	assert.Equal(t, "u-1", c.ID)
	assert.Equal(t, "entrepreneur", c.UserType)
	require.NotNil(t, c.PersonalInformation)
	assert.Equal(t, "Sam", *c.PersonalInformation.Name)

	c.Merge(&User{})
	assert.Equal(t, "entrepreneur", c.UserType)
	assert.NotNil(t, c.PersonalInformation)

	c.Merge(nil)
	assert.Equal(t, "a@x.com", c.Email)
}

func TestCachedUser_JSONShape(t *testing.T) {
	c := CachedUser{User: User{Email: "a@x.com"}, Token: "tok"}
	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@x.com","token":"tok"}`, string(b))
}
