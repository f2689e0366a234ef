package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrijs2005/avarich/internal/server/models"
)

func TestUserDocumentShape(t *testing.T) {
	name := "Sam"
	u := &models.User{
		ID:                  "u-1",
		Email:               "a@x.io",
		PasswordHash:        "hash",
		UserType:            models.UserTypeStudent,
		PersonalInformation: &models.PersonalInformation{Name: &name},
	}

	raw, err := bson.Marshal(u)
	require.NoError(t, err)

	doc := bson.Raw(raw)
	assert.Equal(t, "u-1", doc.Lookup("_id").StringValue())
	assert.Equal(t, "hash", doc.Lookup("password").StringValue())
	assert.Equal(t, "student", doc.Lookup("userType").StringValue())
	_, err = doc.LookupErr("income")
	assert.Error(t, err)

	pi := doc.Lookup("personalInformation").Document()
	assert.Equal(t, "Sam", pi.Lookup("name").StringValue())
	_, err = pi.LookupErr("age")
	assert.Error(t, err)

	var back models.User
	require.NoError(t, bson.Unmarshal(raw, &back))
	assert.Equal(t, u.Email, back.Email)
	assert.Equal(t, "Sam", *back.PersonalInformation.Name)
}

func TestSetDocument(t *testing.T) {
	d := setDocument("userType", "entrepreneur")
	require.Len(t, d, 1)
	assert.Equal(t, "$set", d[0].Key)
	inner, ok := d[0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, bson.D{{Key: "userType", Value: "entrepreneur"}}, inner)
}

func TestEmailIndexIsUnique(t *testing.T) {
	idx := emailIndex()
	assert.Equal(t, bson.D{{Key: "email", Value: 1}}, idx.Keys)
	require.NotNil(t, idx.Options)
}
