// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package analyzer implements the kdulint static analysis pass.
//
// # Overview
//
// kdulint checks single-file components (`.kdu` files) for framework
// specific mistakes: mutated props, unused components and props, undeclared
// events, deprecated slot syntax and more. The analyzer lints the component
// files in the directories of the analyzed package, so it can run as part
// of any [analysis] driver.
//
// # Example
//
// Before:
//
//	<template>
//	  <my-input :initialValue="value" />
//	</template>
//
// After applying kdulint's suggested fix for attribute-hyphenation:
//
//	<template>
//	  <my-input :initial-value="value" />
//	</template>
//
// # Configuration
//
// Rules are configured with [WithRule], the -rule flag or a `.kdulint.yaml`
// file given by [WithConfigFile]:
//
//	rules:
//	  no-restricted-elements: [error, marquee, {element: "button.btn", message: "Use AppButton."}]
//	  require-prop-types: off
package analyzer
