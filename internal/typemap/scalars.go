// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package typemap

// GraphQL and AppSync scalar names.
const (
	ScalarID           = "ID"
	ScalarString       = "String"
	ScalarInt          = "Int"
	ScalarFloat        = "Float"
	ScalarBoolean      = "Boolean"
	ScalarAWSDate      = "AWSDate"
	ScalarAWSTime      = "AWSTime"
	ScalarAWSDateTime  = "AWSDateTime"
	ScalarAWSTimestamp = "AWSTimestamp"
	ScalarAWSJSON      = "AWSJSON"
	ScalarAWSEmail     = "AWSEmail"
	ScalarAWSURL       = "AWSURL"
	ScalarAWSPhone     = "AWSPhone"
	ScalarAWSIPAddress = "AWSIPAddress"
)

// scalars is the fixed set every target maps.
var scalars = map[string]bool{
	ScalarID:           true,
	ScalarString:       true,
	ScalarInt:          true,
	ScalarFloat:        true,
	ScalarBoolean:      true,
	ScalarAWSDate:      true,
	ScalarAWSTime:      true,
	ScalarAWSDateTime:  true,
	ScalarAWSTimestamp: true,
	ScalarAWSJSON:      true,
	ScalarAWSEmail:     true,
	ScalarAWSURL:       true,
	ScalarAWSPhone:     true,
	ScalarAWSIPAddress: true,
}

// IsScalar reports whether name is in the supported scalar set.
func IsScalar(name string) bool {
	return scalars[name]
}

// IsTemporal reports whether the scalar is a date or time value.
func IsTemporal(name string) bool {
	switch name {
	case ScalarAWSDate, ScalarAWSTime, ScalarAWSDateTime:
		return true
	}
	return false
}
