package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexStringDecodesScalars(t *testing.T) {
	var payload struct {
		Str   FlexString `json:"str"`
		Num   FlexString `json:"num"`
		Bool  FlexString `json:"bool"`
		Null  FlexString `json:"null"`
		Obj   FlexString `json:"obj"`
		Arr   FlexString `json:"arr"`
		Float FlexString `json:"float"`
	}
	raw := `{"str":"120.00","num":1,"bool":true,"null":null,"obj":{"a":1},"arr":[1],"float":12.5}`
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	assert.Equal(t, FlexString("120.00"), payload.Str)
	assert.Equal(t, FlexString("1"), payload.Num)
	assert.Equal(t, FlexString("true"), payload.Bool)
	assert.Equal(t, FlexString(""), payload.Null)
	assert.Equal(t, FlexString(""), payload.Obj)
	assert.Equal(t, FlexString(""), payload.Arr)
	assert.Equal(t, "12.5", payload.Float.String())
}

func TestFlexStringEncodesAsString(t *testing.T) {
	out, err := json.Marshal(struct {
		Price FlexString `json:"price"`
	}{Price: "99"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":"99"}`, string(out))
}

func TestFlexListAcceptsArrayOrString(t *testing.T) {
	var payload struct {
		Arr    FlexList `json:"arr"`
		Str    FlexList `json:"str"`
		Null   FlexList `json:"null"`
		Mixed  FlexList `json:"mixed"`
		Object FlexList `json:"object"`
	}
	raw := `{"arr":["nuts"," dairy ",""],"str":"gluten, soy","null":null,"mixed":["egg",1],"object":{"a":1}}`
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	assert.Equal(t, FlexList{"nuts", "dairy"}, payload.Arr)
	assert.Equal(t, FlexList{"gluten", "soy"}, payload.Str)
	assert.Nil(t, payload.Null)
	assert.Equal(t, FlexList{"egg", "1"}, payload.Mixed)
	assert.Empty(t, payload.Object)
}
