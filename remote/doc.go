// SPDX-License-Identifier: EPL-2.0

// Package remote is the typed client for the voice service.
//
// Each operation is one method with exported request and response
// structs; the wire format is HTTP JSON with a shared response
// envelope carrying success and an optional error message. Every
// failure class (transport, HTTP status, envelope rejection, decode)
// returns an *OperationError naming the operation.
//
//	client := remote.NewClient(remote.Config{
//		BaseURL: "https://voice.example.com",
//		APIKey:  key,
//	})
//	sentence, err := client.GenerateSentence(ctx, remote.GenerateSentenceRequest{
//		MinWords: 20,
//		MaxWords: 25,
//		Topic:    "technology",
//	})
package remote
