// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package broadcast is the messaging side of the service.

Outbound, Discord posts each fixture's prompt as a message with two
buttons (away first, home second) and returns the message ID that keys
the prediction channel. StopAccepting strips the buttons; if that edit
fails the fixture stays open and the close sweep retries.

Inbound, Intake handles button presses (votes) and the !join /
!standings text commands. Vote rejections - closed channel, duplicate
pick, unregistered user - are answered ephemerally to the presser.
*/
package broadcast
