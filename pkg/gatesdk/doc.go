// Package gatesdk provides a typed Go client for the credgate membership
// service, plus the request/response types shared with the HTTP handlers.
//
// Basic usage:
//
//	client := gatesdk.NewSDKClient("http://localhost:8080", token)
//	app, err := client.CreateApp(ctx, gatesdk.CreateAppRequest{
//		AppID:             "tenant-t",
//		InitialInvites:    5,
//		InvitesPerNewUser: 2,
//	})
//
// Mutating calls require a bearer token; read-only queries and health
// probes do not.
package gatesdk
