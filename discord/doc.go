// Package discord provides the sarah.Adapter that connects the about bot to Discord.
//
// discordgo owns the gateway connection, heartbeating, reconnection and rate limiting.
// This package only converts Ready and MessageCreate events into log lines and
// sarah.Input, and delivers sarah.Output back to the originating channel.
package discord
