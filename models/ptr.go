package models

// Pointer helpers for filling optional model fields in place.

func StringPtr(v string) *string { return &v }

func BoolPtr(v bool) *bool { return &v }

func Int32Ptr(v int32) *int32 { return &v }

func Int64Ptr(v int64) *int64 { return &v }

func Float32Ptr(v float32) *float32 { return &v }
