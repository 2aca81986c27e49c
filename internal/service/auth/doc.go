// Package auth verifies the bearer tokens that carry a caller's identity and
// role. Tokens are HMAC-SHA256 signed JWTs whose payload names the user
// ("sub"), their numeric id ("id") and their role ("role").
package auth
