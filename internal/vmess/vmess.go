// Package vmess encodes and decodes vmess share links: the "vmess://" scheme
// followed by the base64 of a JSON descriptor with a fixed key set.
package vmess

import (
	"encoding/base64"
	"errors"
	"strings"

	"xrayctl/pkg/jsonhelper"
)

const scheme = "vmess://"

type Link struct {
	Version    string `json:"v"`
	Name       string `json:"ps"`
	Address    string `json:"add"`
	Port       string `json:"port"`
	ID         string `json:"id"`
	AlterID    string `json:"aid"`
	Network    string `json:"net"`
	HeaderType string `json:"type"`
	Host       string `json:"host"`
	Path       string `json:"path"`
	TLS        string `json:"tls"`
}

func (l Link) Encode() (string, error) {
	b, err := jsonhelper.Encode(l)
	if err != nil {
		return "", err
	}
	return scheme + base64.StdEncoding.EncodeToString(b), nil
}

func Decode(s string) (Link, error) {
	if !strings.HasPrefix(s, scheme) {
		return Link{}, errors.New("not a vmess link")
	}

	b, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(s, scheme))
	if err != nil {
		return Link{}, err
	}

	return jsonhelper.Decode[Link](b)
}
