package webidl

// https://heycam.github.io/webidl/#idl-DOMString
type DOMString string

// https://heycam.github.io/webidl/#idl-unsigned-short
type UnsignedShort uint16

// https://w3c.github.io/hr-time/#dom-domhighrestimestamp
type DOMHighResTimeStamp float64
