package scaffold

// Dependencies are installed with --save.
var Dependencies = []string{
	"react",
	"react-dom",
	"@babel/polyfill",
	"antd",
	"classnames",
	"@epig/admin-tools",
}

// DevDependencies are installed with --save-dev.
var DevDependencies = []string{
	"typescript",
	"@epig/af-build-dev",
	"@types/react",
	"@types/react-dom",
	"@types/redux-actions",
	"babel-jest",
	"enzyme",
	"enzyme-adapter-react-16",
	"enzyme-to-json",
	"husky",
	"jest@21",
	"lint-staged",
	"react-test-render",
	"ts-jest",
	"tslint",
	"tslint-eslint-rules",
	"tslint-language-service",
	"tslint-loader",
	"tslint-react",
}

// BuiltInDependencies are template subdirectories linked in as local packages.
var BuiltInDependencies = []string{
	"./src/util",
	"./src/models",
	"./src/components",
}
