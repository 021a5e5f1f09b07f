package vo

type HashInspection struct {
	Version     string `json:"version"`
	Cost        int    `json:"cost"`
	Salt        string `json:"salt"`
	Digest      string `json:"digest"`
	NeedsRehash bool   `json:"needs_rehash"`
}

type HashVerification struct {
	Match bool `json:"match"`
}
