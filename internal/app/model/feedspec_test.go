package model

import "testing"

func TestGetStorageClass(t *testing.T) {
	aws := &AwsConfig{}
	if got := aws.GetStorageClass(); got != "STANDARD" {
		t.Errorf("default storage class was incorrect, got: %s, want: STANDARD", got)
	}
	aws.StorageClass = "STANDARD_IA"
	if got := aws.GetStorageClass(); got != "STANDARD_IA" {
		t.Errorf("storage class was incorrect, got: %s, want: STANDARD_IA", got)
	}
}
