package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	user := &discordgo.User{ID: "u1", Username: "croc_fan", GlobalName: "Croc Fan"}

	testCases := []struct {
		name     string
		member   *discordgo.Member
		user     *discordgo.User
		expected string
	}{
		{"nickname wins", &discordgo.Member{Nick: "Gena"}, user, "Gena"},
		{"global name next", &discordgo.Member{}, user, "Croc Fan"},
		{"username last", nil, &discordgo.User{Username: "croc_fan"}, "croc_fan"},
		{"member user used when user missing", &discordgo.Member{User: &discordgo.User{Username: "inner"}}, nil, "inner"},
		{"blank nickname skipped", &discordgo.Member{Nick: "   "}, user, "Croc Fan"},
		{"nothing known", nil, nil, DefaultDisplayName},
		{"empty user", nil, &discordgo.User{}, DefaultDisplayName},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, displayName(tc.member, tc.user))
		})
	}
}

func TestInteractionUser(t *testing.T) {
	member := &discordgo.Member{User: &discordgo.User{ID: "guild-user"}}
	user, m := interactionUser(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{Member: member}})
	assert.Equal(t, "guild-user", user.ID)
	assert.Same(t, member, m)

	user, m = interactionUser(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{User: &discordgo.User{ID: "dm-user"}}})
	assert.Equal(t, "dm-user", user.ID)
	assert.Nil(t, m)
}

func TestAuthorizer(t *testing.T) {
	ctx := context.Background()
	perms := map[string]int64{
		"admin":     discordgo.PermissionAdministrator,
		"moderator": discordgo.PermissionManageMessages | discordgo.PermissionSendMessages,
		"player":    discordgo.PermissionSendMessages,
	}
	lookup := func(userID, channelID string) (int64, error) {
		if channelID != "channel" {
			return 0, errors.New("unknown channel")
		}
		return perms[userID], nil
	}

	auth := NewAuthorizer(lookup, []string{" vip ", "", "owner"})

	assert.True(t, auth.IsAdministrator(ctx, "channel", "admin"))
	assert.True(t, auth.IsAdministrator(ctx, "channel", "moderator"))
	assert.False(t, auth.IsAdministrator(ctx, "channel", "player"))
	assert.False(t, auth.IsAdministrator(ctx, "elsewhere", "admin"))
	assert.False(t, auth.IsAdministrator(ctx, "channel", ""))

	assert.True(t, auth.IsPrivileged(ctx, "vip"))
	assert.True(t, auth.IsPrivileged(ctx, "owner"))
	assert.False(t, auth.IsPrivileged(ctx, "admin"))
	assert.False(t, auth.IsPrivileged(ctx, ""))

	assert.False(t, NewAuthorizer(nil, nil).IsAdministrator(ctx, "channel", "admin"))
}
