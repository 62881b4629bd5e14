package controllers

// GenerateToken exposes generateToken to the external test package.
var GenerateToken = generateToken
