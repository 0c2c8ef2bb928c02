package syntax

// Kind discriminates the variant of a syntax node
type Kind int

const (
	KindUnknown Kind = iota
	KindTranslationUnit

	// Declarations
	KindIncompleteDeclaration
	KindStaticAssertDeclaration
	KindVariableAndOrFunctionDeclaration
	KindFunctionDefinition
	KindParameterDeclaration
	KindFieldDeclaration
	KindEnumeratorDeclaration
	KindStructDeclaration
	KindUnionDeclaration
	KindEnumDeclaration
	KindExtGNUAsmStatementDeclaration
	KindTemplateDeclaration

	// Specifiers
	KindTypedefStorageClass
	KindExternStorageClass
	KindStaticStorageClass
	KindAutoStorageClass
	KindRegisterStorageClass
	KindThreadLocalStorageClass
	KindConstQualifier
	KindVolatileQualifier
	KindRestrictQualifier
	KindAtomicQualifier
	KindInlineSpecifier
	KindNoReturnSpecifier
	KindBasicTypeSpecifier
	KindTypedefName
	KindAtomicTypeSpecifier
	KindStructTypeSpecifier
	KindUnionTypeSpecifier
	KindEnumTypeSpecifier
	KindTypeDeclarationAsSpecifier
	KindAlignmentSpecifier
	KindExtGNUTypeof
	KindExtGNUAttributeSpecifier
	KindExtGNUAttribute
	KindExtGNUAsmLabel
	KindAsmVolatileQualifier
	KindAsmInlineQualifier
	KindAsmGotoQualifier
	KindForallTypeSpecifier
	KindExistsTypeSpecifier

	// Declarators
	KindPointerDeclarator
	KindIdentifierDeclarator
	KindAbstractDeclarator
	KindParenthesizedDeclarator
	KindArrayDeclarator
	KindFunctionDeclarator
	KindBitfieldDeclarator
	KindParameterSuffix
	KindSubscriptSuffix

	// Initializers and designators
	KindExpressionInitializer
	KindBraceEnclosedInitializer
	KindDesignatedInitializer
	KindFieldDesignator
	KindArrayDesignator

	// Expressions
	KindIdentifierName
	KindPredefinedName
	KindIntegerConstantExpression
	KindFloatingConstantExpression
	KindCharacterConstantExpression
	KindBooleanConstantExpression
	KindNullConstantExpression
	KindStringLiteralExpression
	KindParenthesizedExpression
	KindGenericSelectionExpression
	KindTypedGenericAssociation
	KindDefaultGenericAssociation
	KindStatementExpression
	KindPostIncrementExpression
	KindPostDecrementExpression
	KindArraySubscriptExpression
	KindCallExpression
	KindDirectMemberAccessExpression
	KindIndirectMemberAccessExpression
	KindCompoundLiteralExpression
	KindCastExpression
	KindPreIncrementExpression
	KindPreDecrementExpression
	KindAddressOfExpression
	KindPointerIndirectionExpression
	KindUnaryPlusExpression
	KindUnaryMinusExpression
	KindBitwiseNotExpression
	KindLogicalNotExpression
	KindExtensionExpression
	KindSizeofExpression
	KindAlignofExpression
	KindMultiplyExpression
	KindDivideExpression
	KindModuloExpression
	KindAddExpression
	KindSubtractExpression
	KindLeftShiftExpression
	KindRightShiftExpression
	KindLessThanExpression
	KindLessThanOrEqualExpression
	KindGreaterThanExpression
	KindGreaterThanOrEqualExpression
	KindEqualsExpression
	KindNotEqualsExpression
	KindBitwiseANDExpression
	KindBitwiseXORExpression
	KindBitwiseORExpression
	KindLogicalANDExpression
	KindLogicalORExpression
	KindConditionalExpression
	KindBasicAssignmentExpression
	KindMultiplyAssignmentExpression
	KindDivideAssignmentExpression
	KindModuloAssignmentExpression
	KindAddAssignmentExpression
	KindSubtractAssignmentExpression
	KindLeftShiftAssignmentExpression
	KindRightShiftAssignmentExpression
	KindAndAssignmentExpression
	KindXorAssignmentExpression
	KindOrAssignmentExpression
	KindSequencingExpression
	KindAmbiguousCastOrBinaryExpression

	// Type names and type references
	KindTypeName
	KindTypeNameAsTypeReference
	KindExpressionAsTypeReference
	KindAmbiguousTypeNameOrExpressionAsTypeReference

	// Statements
	KindCompoundStatement
	KindDeclarationStatement
	KindExpressionStatement
	KindIfStatement
	KindSwitchStatement
	KindWhileStatement
	KindDoStatement
	KindForStatement
	KindIdentifierLabelStatement
	KindCaseLabelStatement
	KindDefaultLabelStatement
	KindGotoStatement
	KindContinueStatement
	KindBreakStatement
	KindReturnStatement
	KindExtGNUAsmStatement
	KindAsmOperand
	KindAmbiguousExpressionOrDeclarationStatement
)

var kindNames = map[Kind]string{
	KindUnknown:         "Unknown",
	KindTranslationUnit: "TranslationUnit",

	KindIncompleteDeclaration:            "IncompleteDeclaration",
	KindStaticAssertDeclaration:          "StaticAssertDeclaration",
	KindVariableAndOrFunctionDeclaration: "VariableAndOrFunctionDeclaration",
	KindFunctionDefinition:               "FunctionDefinition",
	KindParameterDeclaration:             "ParameterDeclaration",
	KindFieldDeclaration:                 "FieldDeclaration",
	KindEnumeratorDeclaration:            "EnumeratorDeclaration",
	KindStructDeclaration:                "StructDeclaration",
	KindUnionDeclaration:                 "UnionDeclaration",
	KindEnumDeclaration:                  "EnumDeclaration",
	KindExtGNUAsmStatementDeclaration:    "ExtGNUAsmStatementDeclaration",
	KindTemplateDeclaration:              "TemplateDeclaration",

	KindTypedefStorageClass:        "TypedefStorageClass",
	KindExternStorageClass:         "ExternStorageClass",
	KindStaticStorageClass:         "StaticStorageClass",
	KindAutoStorageClass:           "AutoStorageClass",
	KindRegisterStorageClass:       "RegisterStorageClass",
	KindThreadLocalStorageClass:    "ThreadLocalStorageClass",
	KindConstQualifier:             "ConstQualifier",
	KindVolatileQualifier:          "VolatileQualifier",
	KindRestrictQualifier:          "RestrictQualifier",
	KindAtomicQualifier:            "AtomicQualifier",
	KindInlineSpecifier:            "InlineSpecifier",
	KindNoReturnSpecifier:          "NoReturnSpecifier",
	KindBasicTypeSpecifier:         "BasicTypeSpecifier",
	KindTypedefName:                "TypedefName",
	KindAtomicTypeSpecifier:        "AtomicTypeSpecifier",
	KindStructTypeSpecifier:        "StructTypeSpecifier",
	KindUnionTypeSpecifier:         "UnionTypeSpecifier",
	KindEnumTypeSpecifier:          "EnumTypeSpecifier",
	KindTypeDeclarationAsSpecifier: "TypeDeclarationAsSpecifier",
	KindAlignmentSpecifier:         "AlignmentSpecifier",
	KindExtGNUTypeof:               "ExtGNUTypeof",
	KindExtGNUAttributeSpecifier:   "ExtGNUAttributeSpecifier",
	KindExtGNUAttribute:            "ExtGNUAttribute",
	KindExtGNUAsmLabel:             "ExtGNUAsmLabel",
	KindAsmVolatileQualifier:       "AsmVolatileQualifier",
	KindAsmInlineQualifier:         "AsmInlineQualifier",
	KindAsmGotoQualifier:           "AsmGotoQualifier",
	KindForallTypeSpecifier:        "ForallTypeSpecifier",
	KindExistsTypeSpecifier:        "ExistsTypeSpecifier",

	KindPointerDeclarator:       "PointerDeclarator",
	KindIdentifierDeclarator:    "IdentifierDeclarator",
	KindAbstractDeclarator:      "AbstractDeclarator",
	KindParenthesizedDeclarator: "ParenthesizedDeclarator",
	KindArrayDeclarator:         "ArrayDeclarator",
	KindFunctionDeclarator:      "FunctionDeclarator",
	KindBitfieldDeclarator:      "BitfieldDeclarator",
	KindParameterSuffix:         "ParameterSuffix",
	KindSubscriptSuffix:         "SubscriptSuffix",

	KindExpressionInitializer:    "ExpressionInitializer",
	KindBraceEnclosedInitializer: "BraceEnclosedInitializer",
	KindDesignatedInitializer:    "DesignatedInitializer",
	KindFieldDesignator:          "FieldDesignator",
	KindArrayDesignator:          "ArrayDesignator",

	KindIdentifierName:                     "IdentifierName",
	KindPredefinedName:                     "PredefinedName",
	KindIntegerConstantExpression:          "IntegerConstantExpression",
	KindFloatingConstantExpression:         "FloatingConstantExpression",
	KindCharacterConstantExpression:        "CharacterConstantExpression",
	KindBooleanConstantExpression:          "BooleanConstantExpression",
	KindNullConstantExpression:             "NullConstantExpression",
	KindStringLiteralExpression:            "StringLiteralExpression",
	KindParenthesizedExpression:            "ParenthesizedExpression",
	KindGenericSelectionExpression:         "GenericSelectionExpression",
	KindTypedGenericAssociation:            "TypedGenericAssociation",
	KindDefaultGenericAssociation:          "DefaultGenericAssociation",
	KindStatementExpression:                "StatementExpression",
	KindPostIncrementExpression:            "PostIncrementExpression",
	KindPostDecrementExpression:            "PostDecrementExpression",
	KindArraySubscriptExpression:           "ArraySubscriptExpression",
	KindCallExpression:                     "CallExpression",
	KindDirectMemberAccessExpression:       "DirectMemberAccessExpression",
	KindIndirectMemberAccessExpression:     "IndirectMemberAccessExpression",
	KindCompoundLiteralExpression:          "CompoundLiteralExpression",
	KindCastExpression:                     "CastExpression",
	KindPreIncrementExpression:             "PreIncrementExpression",
	KindPreDecrementExpression:             "PreDecrementExpression",
	KindAddressOfExpression:                "AddressOfExpression",
	KindPointerIndirectionExpression:       "PointerIndirectionExpression",
	KindUnaryPlusExpression:                "UnaryPlusExpression",
	KindUnaryMinusExpression:               "UnaryMinusExpression",
	KindBitwiseNotExpression:               "BitwiseNotExpression",
	KindLogicalNotExpression:               "LogicalNotExpression",
	KindExtensionExpression:                "ExtensionExpression",
	KindSizeofExpression:                   "SizeofExpression",
	KindAlignofExpression:                  "AlignofExpression",
	KindMultiplyExpression:                 "MultiplyExpression",
	KindDivideExpression:                   "DivideExpression",
	KindModuloExpression:                   "ModuloExpression",
	KindAddExpression:                      "AddExpression",
	KindSubtractExpression:                 "SubtractExpression",
	KindLeftShiftExpression:                "LeftShiftExpression",
	KindRightShiftExpression:               "RightShiftExpression",
	KindLessThanExpression:                 "LessThanExpression",
	KindLessThanOrEqualExpression:          "LessThanOrEqualExpression",
	KindGreaterThanExpression:              "GreaterThanExpression",
	KindGreaterThanOrEqualExpression:       "GreaterThanOrEqualExpression",
	KindEqualsExpression:                   "EqualsExpression",
	KindNotEqualsExpression:                "NotEqualsExpression",
	KindBitwiseANDExpression:               "BitwiseANDExpression",
	KindBitwiseXORExpression:               "BitwiseXORExpression",
	KindBitwiseORExpression:                "BitwiseORExpression",
	KindLogicalANDExpression:               "LogicalANDExpression",
	KindLogicalORExpression:                "LogicalORExpression",
	KindConditionalExpression:              "ConditionalExpression",
	KindBasicAssignmentExpression:          "BasicAssignmentExpression",
	KindMultiplyAssignmentExpression:       "MultiplyAssignmentExpression",
	KindDivideAssignmentExpression:         "DivideAssignmentExpression",
	KindModuloAssignmentExpression:         "ModuloAssignmentExpression",
	KindAddAssignmentExpression:            "AddAssignmentExpression",
	KindSubtractAssignmentExpression:       "SubtractAssignmentExpression",
	KindLeftShiftAssignmentExpression:      "LeftShiftAssignmentExpression",
	KindRightShiftAssignmentExpression:     "RightShiftAssignmentExpression",
	KindAndAssignmentExpression:            "AndAssignmentExpression",
	KindXorAssignmentExpression:            "XorAssignmentExpression",
	KindOrAssignmentExpression:             "OrAssignmentExpression",
	KindSequencingExpression:               "SequencingExpression",
	KindAmbiguousCastOrBinaryExpression:    "AmbiguousCastOrBinaryExpression",

	KindTypeName:                    "TypeName",
	KindTypeNameAsTypeReference:     "TypeNameAsTypeReference",
	KindExpressionAsTypeReference:   "ExpressionAsTypeReference",
	KindAmbiguousTypeNameOrExpressionAsTypeReference: "AmbiguousTypeNameOrExpressionAsTypeReference",

	KindCompoundStatement:                         "CompoundStatement",
	KindDeclarationStatement:                      "DeclarationStatement",
	KindExpressionStatement:                       "ExpressionStatement",
	KindIfStatement:                               "IfStatement",
	KindSwitchStatement:                           "SwitchStatement",
	KindWhileStatement:                            "WhileStatement",
	KindDoStatement:                               "DoStatement",
	KindForStatement:                              "ForStatement",
	KindIdentifierLabelStatement:                  "IdentifierLabelStatement",
	KindCaseLabelStatement:                        "CaseLabelStatement",
	KindDefaultLabelStatement:                     "DefaultLabelStatement",
	KindGotoStatement:                             "GotoStatement",
	KindContinueStatement:                         "ContinueStatement",
	KindBreakStatement:                            "BreakStatement",
	KindReturnStatement:                           "ReturnStatement",
	KindExtGNUAsmStatement:                        "ExtGNUAsmStatement",
	KindAsmOperand:                                "AsmOperand",
	KindAmbiguousExpressionOrDeclarationStatement: "AmbiguousExpressionOrDeclarationStatement",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}
